package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Keep your links stored"
	MsgVersionShort     = "Print version information"
	MsgVersionLong      = "Print detailed version information including commit hash and build date"
	MsgAddShort         = "Store a link at the activated backends"
	MsgBackendShort     = "Add and inspect backends"
	MsgBackendAddShort  = "Add a backend to store links at"
	MsgBackendListShort = "Show the activated backends and their configuration"
	MsgListShort        = "List stored links"
	MsgCompletionShort  = "Generate shell completion script"

	// Add
	MsgWarnNoBackends = "[warning]warning[/warning]: No backend activated..."
	MsgWarnLinkExists = "[warning]warning[/warning]: Link already exists"
	MsgAddAnyway      = "Do you want to add it anyway?"
	MsgNotAdded       = "Link not added."
	MsgAddedFormat    = "[success]✓[/success] Added [url]%s[/url] to [backend]%s[/backend]"
	MsgFailedFormat   = "[error]✗[/error] [backend]%s[/backend]: %v"
	MsgRecordedFormat = "[muted]Recorded in %s[/muted]"

	// Backends
	MsgChooseBackend      = "Choose to add one of the following backends"
	MsgAllBackendsActive  = "All available backends are already activated."
	MsgBackendAddedFormat = "[success]✓[/success] Activated [backend]%s[/backend], configuration saved to [path]%s[/path]"
	MsgNoActiveBackends   = "No backend activated. Run 'linkkeeper backend add' to add one."
	MsgAskRepository      = "In what repository should the links be stored?"
	MsgAskFileName        = "... and what name would you like the file to have?"
	MsgAskPushOnAdd       = "Should link keeper automatically push when adding a link?"
	MsgAskTokenFormat     = "Your %s access token"

	// List
	MsgNoLinks = "No links stored yet."

	// Version output
	MsgVersionFormat = "linkkeeper version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths"
	MsgErrBackendFailed = "%d of %d backends failed to store the link"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCategory = "Attach a category to your link"
	MsgFlagYes      = "Add the link even if it is already stored"
	MsgFlagFormat   = "Output format (markdown, json, yaml, xbel)"
	MsgFlagFilter   = "Only list links in this category"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/backend-add-long.txt
	msgBackendAddLongRaw string
	MsgBackendAddLong    = strings.TrimSpace(msgBackendAddLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
