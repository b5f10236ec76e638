package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/java-import-adder/pkg/config"
	"github.com/siyuan-infoblox/java-import-adder/pkg/inserter"
	"github.com/siyuan-infoblox/java-import-adder/pkg/version"
)

const (
	UseDescription   = "jia [flags] FQN PATH [PATH ...]"
	ShortDescription = "Java import adder - A tool to add class and static imports to Java files"
	LongDescription  = `jia is a command-line tool that inserts an import statement into one or
more Java source files.

By default the fully-qualified name is added as a class import:

  import com.example.SomeClass;

With --static it is added as a static member import:

  import static com.example.Util.someMember;

The tool is idempotent: a file that already contains the exact import line
is left untouched. The import is inserted after the last existing import;
if there are no imports, after the package declaration; if there is
neither, at the top of the file.

PATH can be either a single Java file or a directory. When a directory is
specified, all Java source files in the directory and subdirectories will
be processed recursively.`
)

var (
	static      bool
	dryRun      bool
	noColor     bool
	configPath  string
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&static, "static", false, "Treat the given FQN as a static member to import (import static ...)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print a unified diff of the changes instead of writing files")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .jia.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need FQN or file arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(2)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		if info.Version == "dev" && versionStr != "" {
			// Prefer the module version recorded in build info over the
			// ldflags default.
			info.Version = versionStr
		}
		fmt.Println(info.String())
		return nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if noColor || cfg.NoColor {
		color.NoColor = true
	}

	mode := inserter.ClassImport
	if static {
		mode = inserter.StaticImport
	}
	stmt, err := inserter.NewStatement(args[0], mode)
	if err != nil {
		return err
	}

	a := inserter.New(inserter.Config{
		Statement:  stmt,
		Extensions: cfg.Extensions,
		DryRun:     dryRun,
	})
	return a.ProcessPaths(args[1:])
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
