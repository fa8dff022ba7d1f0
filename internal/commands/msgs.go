// Package commands holds the user-facing strings of the propconv CLI.
package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Convert raw property values into typed Go values"
	MsgVersionShort  = "Print version information"
	MsgVersionLong   = "Print detailed version information including commit hash and build date"
	MsgHandlersShort = "List registered type handlers"
	MsgConvertShort  = "Convert a raw value with the handler for a type"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to a config file (default: $XDG_CONFIG_HOME/propconv/config.toml)"
	MsgFlagOutput  = "Output format: auto, text, json, yaml or toml"
	MsgFlagType    = "Target type: a registered type name (int, time.Time) or an alias (byte, uuid, xml)"

	// Error messages
	MsgErrInitialize  = "failed to initialize"
	MsgErrUnknownType = "no handler registered for type %q"
	MsgErrNoType      = "--type is required"
)

// Long messages
const (
	MsgRootLong = `propconv converts raw property values, as stored by content systems,
into typed values using a registry of type handlers.

Built-in handlers cover the Go primitive types, time values and UUIDs.
Handler sources add structured values (YAML/JSON maps and lists) and XML
documents. Run "propconv handlers" to see what is registered.`

	MsgHandlersLong = `Handlers lists every type handler the registry discovered, with the
source that contributed it. Handlers rejected because another source had
already claimed their type are listed separately.`

	MsgConvertLong = `Convert runs the raw value through the handler registered for --type and
prints the result. Conversion is best effort: a value the handler cannot
parse yields the type's zero value.`

	MsgConvertExample = `  # Parse an integer
  propconv convert --type int 42

  # Parse a byte, overflow yields 0
  propconv convert --type byte 300

  # Decode a YAML map as JSON
  propconv convert --type map --output json 'title: Home'`
)
