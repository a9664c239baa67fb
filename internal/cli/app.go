package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/commands/create"
	"github.com/arthur-debert/appin/pkg/commands/install"
	"github.com/arthur-debert/appin/pkg/commands/list"
	"github.com/arthur-debert/appin/pkg/commands/remove"
	"github.com/arthur-debert/appin/pkg/commands/show"
	"github.com/arthur-debert/appin/pkg/config"
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/system"
	"github.com/arthur-debert/appin/pkg/types"
	"github.com/arthur-debert/appin/pkg/ui"
)

// errWarned signals a warning-only outcome that was already reported to
// the user: exit 1, nothing more to print.
var errWarned = stderrors.New("completed with warnings")

// app wires the components for one invocation
type app struct {
	settings    *config.Settings
	bundles     *appimage.Store
	descriptors *desktop.Store
	writer      *desktop.Writer
	packages    system.PackageManager
	index       system.LauncherIndex
	format      ui.Format
	stdout      io.Writer
}

// newApp builds the component graph from resolved settings. Directory
// locations come from dirs, which has already expanded and absolutized
// the configured values.
func newApp(settings *config.Settings, dirs types.Pather, fs types.FS, format ui.Format, stdout io.Writer) *app {
	descriptors := desktop.NewStore(fs, dirs.DesktopDir(), settings.Prefix)
	icons := desktop.NewIconInstaller(fs, dirs.IconDir())
	runner := system.NewRunner()

	return &app{
		settings:    settings,
		bundles:     appimage.NewStore(fs, dirs.BundleDir(), settings.BundleExtension),
		descriptors: descriptors,
		writer:      desktop.NewWriter(descriptors, icons),
		packages:    system.NewPackageManager(runner),
		index:       system.NewLauncherIndex(runner),
		format:      format,
		stdout:      stdout,
	}
}

// Run executes a resolved plan. Warning-only outcomes return errWarned
// after reporting; anything else non-nil is fatal.
func (a *app) Run(plan Plan, cmd *cobra.Command) error {
	if plan.InstallRuntime {
		if err := a.runInstall(); err != nil {
			return err
		}
	}

	switch plan.Op {
	case OpHelp:
		return cmd.Help()
	case OpShow:
		return a.runShow(plan.Name)
	case OpGenConfig:
		return a.runGenConfig()
	case OpList:
		return a.runList()
	case OpRemove:
		return a.runRemove(plan.Name)
	case OpCreate:
		return a.runCreate(plan.Tokens)
	case OpNone:
		return nil
	default:
		return errors.Newf(errors.ErrInternal, "unknown operation %d", plan.Op)
	}
}

func (a *app) runInstall() error {
	result, err := install.InstallRuntime(install.Options{
		Packages: a.packages,
		Package:  a.settings.RuntimePackage,
	})
	if err != nil {
		return err
	}
	if result.AlreadyInstalled {
		fmt.Fprintf(a.stdout, MsgRuntimePresent+"\n", result.Package)
	} else {
		fmt.Fprintf(a.stdout, MsgRuntimeDone+"\n", result.Package)
	}
	return nil
}

func (a *app) runShow(name string) error {
	result, err := show.ShowDesktop(show.Options{
		Descriptors: a.descriptors,
		Name:        name,
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrDescriptorNotFound) {
			printWarning(fmt.Sprintf(MsgNoDescriptor, name))
			return errWarned
		}
		return err
	}

	fmt.Fprint(a.stdout, result.Content)
	return nil
}

func (a *app) runGenConfig() error {
	content, err := config.GenerateConfigContent()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, content)
	return nil
}

func (a *app) runList() error {
	result, err := list.ListBundles(list.Options{
		Bundles:     a.bundles,
		Descriptors: a.descriptors,
	})
	if err != nil {
		return err
	}

	if result.Total() == 0 {
		printWarning(fmt.Sprintf(MsgNoBundles, a.bundles.Dir()))
		return errWarned
	}

	fmt.Fprintln(a.stdout, ui.RenderReport(result, a.format))
	return nil
}

func (a *app) runRemove(name string) error {
	result, err := remove.RemoveDesktop(remove.Options{
		Descriptors: a.descriptors,
		Index:       a.index,
		Name:        name,
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarning(w)
	}

	if !result.Removed {
		printWarning(fmt.Sprintf(MsgNothingRemoved, name))
		return errWarned
	}

	fmt.Fprintf(a.stdout, MsgDescriptorGone+"\n", result.Path)
	return nil
}

func (a *app) runCreate(tokens []string) error {
	result, err := create.CreateDesktops(create.Options{
		Bundles:    a.bundles,
		Writer:     a.writer,
		Index:      a.index,
		DesktopDir: a.descriptors.Dir(),
		Tokens:     tokens,
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarning(w)
	}

	if len(result.Created) == 0 {
		printWarning(MsgNothingToCreate)
		return errWarned
	}

	fmt.Fprintln(a.stdout, ui.RenderCreated(result, a.format))
	return nil
}
