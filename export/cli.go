package export

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	u "github.com/araddon/gou"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"

	"github.com/felixgeelhaar/dfakit"
)

// MachineExporter is implemented by types that can export a JSON definition.
// DefinitionExporter[S, A] implements this interface.
type MachineExporter interface {
	ExportDefinition() (any, error)
}

// ExportOptions configures the export behavior.
type ExportOptions struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// Indent is the string used for indentation (default: "  ")
	Indent string

	// Output is where JSON will be written (default: os.Stdout)
	Output io.Writer

	// MachineID filters to a specific machine ID (empty = export all)
	MachineID string
}

// DefaultExportOptions returns options with sensible defaults.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		PrettyPrint: false,
		Indent:      "  ",
		Output:      os.Stdout,
		MachineID:   "",
	}
}

// CLIConfig holds CLI defaults read from the environment. Flags override them.
type CLIConfig struct {
	Pretty   bool   `env:"DFAKIT_PRETTY"`
	Indent   string `env:"DFAKIT_INDENT" envDefault:"  "`
	LogLevel string `env:"DFAKIT_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads CLI defaults from environment variables.
func ParseEnv() (CLIConfig, error) {
	var cfg CLIConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// ExportMachine exports a single machine to JSON.
func ExportMachine(exporter MachineExporter, opts ExportOptions) error {
	def, err := exporter.ExportDefinition()
	if err != nil {
		return errors.Wrap(err, "export failed")
	}

	return writeJSON(def, opts)
}

// ExportAll exports multiple machines to JSON.
// The output is a JSON object with machine IDs as keys.
func ExportAll(machines map[string]MachineExporter, opts ExportOptions) error {
	if opts.MachineID != "" {
		exporter, ok := machines[opts.MachineID]
		if !ok {
			return errors.Newf("machine %q not found", opts.MachineID)
		}
		return ExportMachine(exporter, opts)
	}

	result := make(map[string]any)
	for id, exporter := range machines {
		def, err := exporter.ExportDefinition()
		if err != nil {
			return errors.Wrapf(err, "export %q failed", id)
		}
		result[id] = def
	}

	return writeJSON(result, opts)
}

// writeJSON writes a value as JSON to the configured output.
func writeJSON(v any, opts ExportOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var data []byte
	var err error

	if opts.PrettyPrint {
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		data, err = json.MarshalIndent(v, "", indent)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return errors.Wrap(err, "JSON marshal failed")
	}

	if _, err := out.Write(data); err != nil {
		return errors.Wrap(err, "write failed")
	}

	// Add trailing newline for terminal output
	if _, err := out.Write([]byte("\n")); err != nil {
		return errors.Wrap(err, "write newline failed")
	}

	return nil
}

// LoadFile reads a definition file. JSON is detected by a leading '{';
// anything else is parsed as the text format.
func LoadFile(path string) (*dfakit.Automaton[string, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read definition %q", path)
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		def, err := Decode[string, string](bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "load %q", path)
		}
		return Load(def)
	}

	a, err := dfakit.Define(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return a, nil
}

// definitionFiles collects repeated -f flags.
type definitionFiles []string

func (d *definitionFiles) String() string { return strings.Join(*d, ",") }

func (d *definitionFiles) Set(path string) error {
	*d = append(*d, path)
	return nil
}

// RunCLI loads one or more definitions and either exports them as JSON or
// runs each positional argument through one of them, one symbol per rune.
// Machine IDs are file names without their extension.
// Usage: run_tool -f FILE [-f FILE...] [-machine=ID] [-export] [-pretty] [-indent=STR] [-accept] [-o=FILE] [-loglevel=LVL] [INPUT...]
func RunCLI(args []string, stdout io.Writer) error {
	cfg, err := ParseEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("dfakit", flag.ContinueOnError)

	var files definitionFiles
	fs.Var(&files, "f", "Definition file, text or JSON; repeat to load several (required)")
	machine := fs.String("machine", "", "Machine ID to export or run (required to run when several are loaded)")
	exportJSON := fs.Bool("export", false, "Print definitions as JSON instead of running inputs")
	pretty := fs.Bool("pretty", cfg.Pretty, "Pretty-print JSON output")
	indent := fs.String("indent", cfg.Indent, "Indentation string (used with -pretty)")
	accept := fs.Bool("accept", false, "Also report whether each run ends in a final state")
	output := fs.String("o", "", "Output file (default: stdout)")
	logLevel := fs.String("loglevel", cfg.LogLevel, "log level [debug|info|warn|error]")

	if err := fs.Parse(args); err != nil {
		return err
	}

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if len(files) == 0 {
		return errors.New("a definition file is required (-f)")
	}

	machines, err := loadMachines(files)
	if err != nil {
		return err
	}

	return withOutput(*output, stdout, func(out io.Writer) error {
		if *exportJSON {
			opts := DefaultExportOptions()
			opts.PrettyPrint = *pretty
			opts.Indent = *indent
			opts.Output = out
			opts.MachineID = *machine
			if opts.MachineID == "" && len(files) == 1 {
				// a single definition exports as itself, not as a one-entry object
				opts.MachineID = definitionID(files[0])
			}

			exporters := make(map[string]MachineExporter, len(machines))
			for id, a := range machines {
				exporters[id] = NewDefinitionExporter(id, a)
			}
			return ExportAll(exporters, opts)
		}

		a, err := selectMachine(machines, *machine)
		if err != nil {
			return err
		}
		for _, input := range fs.Args() {
			line, err := runInput(a, input, *accept)
			if err != nil {
				return errors.Wrapf(err, "input %q", input)
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
		return nil
	})
}

// loadMachines loads every definition file keyed by its machine ID.
func loadMachines(paths []string) (map[string]*dfakit.Automaton[string, string], error) {
	machines := make(map[string]*dfakit.Automaton[string, string], len(paths))
	for _, path := range paths {
		id := definitionID(path)
		if _, ok := machines[id]; ok {
			return nil, errors.Newf("duplicate machine ID %q from %q", id, path)
		}

		a, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		u.Infof("loaded %q as %q: %d states, %d symbols, %d transitions",
			path, id, a.States().Len(), a.Alphabet().Len(), a.Transitions().Len())
		machines[id] = a
	}
	return machines, nil
}

// selectMachine picks the machine inputs run through.
func selectMachine(machines map[string]*dfakit.Automaton[string, string], id string) (*dfakit.Automaton[string, string], error) {
	if id != "" {
		a, ok := machines[id]
		if !ok {
			return nil, errors.Newf("machine %q not found", id)
		}
		return a, nil
	}
	if len(machines) != 1 {
		return nil, errors.Newf("%d definitions loaded, choose one with -machine", len(machines))
	}
	for _, a := range machines {
		return a, nil
	}
	return nil, errors.AssertionFailedf("no machine loaded")
}

// withOutput calls write with stdout, or with the file at path when set.
// A failed close of the file is reported as an error.
func withOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output file")
		}
	}()
	return write(f)
}

// runInput runs one input and formats "<input>\t<state>[\t<accepted|rejected>]".
func runInput(a *dfakit.Automaton[string, string], input string, accept bool) (string, error) {
	interp := dfakit.NewInterpreter(a).
		WithTransitionLogger(func(from, symbol, to string) {
			u.Debugf("%s -%s-> %s", from, symbol, to)
		})
	interp.Start()

	if err := interp.SendAll(dfakit.SplitRunes(input)); err != nil {
		return "", err
	}

	state, ok := interp.State()
	if !ok {
		state = "<undefined>"
	}
	fields := []string{input, state}
	if accept {
		verdict := "rejected"
		if interp.Done() {
			verdict = "accepted"
		}
		fields = append(fields, verdict)
	}
	return strings.Join(fields, "\t"), nil
}

// definitionID derives a machine ID from a file name.
func definitionID(path string) string {
	base := path
	if idx := strings.LastIndexAny(base, `/\`); idx != -1 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}
