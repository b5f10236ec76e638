package errors

// Error message constants for the java-import-adder application
const (
	// File processing errors
	ErrMsgFailedToReadFile      = "failed to read file"
	ErrMsgFailedToWriteFile     = "failed to write file"
	ErrMsgFailedToFindJavaFiles = "failed to find Java files in directory"
	ErrMsgFilesFailedToProcess  = "%d files failed to process"

	// Input validation errors
	ErrMsgEmptyFQN   = "fully-qualified name must not be empty"
	ErrMsgInvalidFQN = "fully-qualified name must not contain whitespace or ';'"

	// Per-file status messages
	WarnMsgNotAFile          = "[WARN] Skipping: not a file: %s"
	WarnMsgNonApplicableFile = "[WARN] Skipping non-Java file: %s"
	InfoMsgAlreadyPresent    = "[INFO] Import already present in %s — skipping"
	InfoMsgAdded             = "[OK] Added: %s -> %s"
	ErrMsgProcessingFile     = "[ERROR] %s: %v"

	// Directory processing messages
	InfoMsgNoJavaFilesFound = "No Java files found in directory: %s"
	InfoMsgFoundJavaFiles   = "Found %d Java files in directory: %s"
	InfoMsgProcessedCount   = "\nAdded %d files, skipped %d"
	InfoMsgErrorCount       = ", %d files had errors"
)
