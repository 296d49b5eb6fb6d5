package catalog

import "fmt"

// Method is the launch strategy a terminal supports for opening a window
// at a target directory.
type Method int

const (
	// ScriptedAutomation drives the terminal over its AppleScript interface.
	ScriptedAutomation Method = iota
	// CommandLineWorkingDir spawns the terminal binary with --working-directory.
	CommandLineWorkingDir
	// CommandLineDirectoryFlag spawns the terminal binary with its own
	// directory flag (kitty uses --directory).
	CommandLineDirectoryFlag
	// VendorSpecificCLI goes through the terminal's dedicated CLI tool.
	VendorSpecificCLI
	// GenericOpen activates the app generically and types a cd command.
	GenericOpen
)

func (m Method) String() string {
	switch m {
	case ScriptedAutomation:
		return "scripted-automation"
	case CommandLineWorkingDir:
		return "working-dir-flag"
	case CommandLineDirectoryFlag:
		return "directory-flag"
	case VendorSpecificCLI:
		return "vendor-cli"
	case GenericOpen:
		return "generic-open"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Descriptor identifies one terminal application and how to launch it.
type Descriptor struct {
	// ID is the macOS bundle identifier, stable across versions.
	ID string
	// DisplayName is shown in menus and error messages.
	DisplayName string
	// AppName is the bundle name on disk (<AppName>.app).
	AppName string
	// CLIName is the embedded executable / PATH binary name, if any.
	CLIName string
	// DirFlag is the working-directory flag for command-line methods.
	DirFlag string
	Method  Method
}

// descriptors is the static catalog. Declaration order is presentation
// order; adding a terminal is an edit here, not a runtime operation.
var descriptors = []Descriptor{
	{ID: "com.apple.Terminal", DisplayName: "Terminal", AppName: "Terminal", Method: ScriptedAutomation},
	{ID: "com.googlecode.iterm2", DisplayName: "iTerm2", AppName: "iTerm", Method: ScriptedAutomation},
	{ID: "org.alacritty", DisplayName: "Alacritty", AppName: "Alacritty", CLIName: "alacritty", DirFlag: "--working-directory", Method: CommandLineWorkingDir},
	{ID: "com.mitchellh.ghostty", DisplayName: "Ghostty", AppName: "Ghostty", CLIName: "ghostty", DirFlag: "--working-directory", Method: CommandLineWorkingDir},
	{ID: "net.kovidgoyal.kitty", DisplayName: "kitty", AppName: "kitty", CLIName: "kitty", DirFlag: "--directory", Method: CommandLineDirectoryFlag},
	{ID: "com.github.wez.wezterm", DisplayName: "WezTerm", AppName: "WezTerm", CLIName: "wezterm", Method: VendorSpecificCLI},
	{ID: "co.zeit.hyper", DisplayName: "Hyper", AppName: "Hyper", Method: GenericOpen},
	{ID: "dev.warp.Warp-Stable", DisplayName: "Warp", AppName: "Warp", Method: GenericOpen},
	{ID: "org.tabby", DisplayName: "Tabby", AppName: "Tabby", Method: GenericOpen},
}

func init() {
	seen := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if _, dup := seen[d.ID]; dup {
			panic("catalog: duplicate terminal identifier " + d.ID)
		}
		seen[d.ID] = struct{}{}
	}
}

// All returns the catalog in declaration order. The returned slice is a
// copy; the catalog itself is immutable.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup finds a descriptor by identifier.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
