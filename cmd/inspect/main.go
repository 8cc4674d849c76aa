package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vexingcodes/bitfield"
)

func main() {
	var (
		layoutSpec  = flag.String("layout", "", "Register layout (name:width[:strategy] entries, _ pads)")
		widthBits   = flag.Uint("width", 8, "Register width in bits (8, 16, 32 or 64)")
		value       = flag.String("value", "", "Initial register value (0x, 0b, 0o or decimal)")
		getField    = flag.String("get", "", "Read one field and exit")
		setField    = flag.String("set", "", "Apply one assignment (name=value) before printing")
		strategy    = flag.String("strategy", "", "Call-site strategy for -set (unchecked, mask, strict, panic)")
		debug       = flag.Bool("debug", false, "Debug logging for layout allocation")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *layoutSpec == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -layout <spec> [-width bits] [-value v] [-get name] [-set name=v]")
		fmt.Fprintln(os.Stderr, "       inspect -layout <spec> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		bitfield.SetLogger(logger)
	}

	reg, err := newRegister(*widthBits, *layoutSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *value != "" {
		v, err := parseValue(*value, reg.width())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		reg.setRaw(v)
	}

	if *interactive {
		if err := runInteractive(reg, *layoutSpec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(reg, *getField, *setField, *strategy); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reg register, getField, setField, strategyName string) error {
	if setField != "" {
		name, valStr, ok := strings.Cut(setField, "=")
		if !ok {
			return fmt.Errorf("-set wants name=value, got %q", setField)
		}
		v, err := parseValue(valStr, reg.width())
		if err != nil {
			return err
		}
		var cfgs []bitfield.Config
		if strategyName != "" {
			strat, err := bitfield.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			cfgs = append(cfgs, bitfield.Config{Strategy: strat})
		}
		if err := reg.set(name, v, cfgs...); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}

	if getField != "" {
		v, err := reg.get(getField)
		if err != nil {
			return fmt.Errorf("get %s: %w", getField, err)
		}
		fmt.Printf("%d\n", v)
		return nil
	}

	printRegister(reg)
	return nil
}

func printRegister(reg register) {
	w := reg.width()
	fmt.Printf("Register: %d bits\n", w)
	fmt.Printf("Layout:   %s\n", reg.describe())
	fmt.Printf("Value:    0x%0*X  0b%0*b\n", int(w/4), reg.raw(), int(w), reg.raw())

	fmt.Printf("\nFields:\n")
	fields := reg.fields()
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		v, err := reg.get(f.name)
		if err != nil {
			fmt.Printf("  %-12s [%2d:%2d]  error: %v\n", f.name, f.offset+f.width-1, f.offset, err)
			continue
		}
		fmt.Printf("  %-12s [%2d:%2d]  %d (0b%0*b)\n", f.name, f.offset+f.width-1, f.offset, v, int(f.width), v)
	}
}

func parseValue(s string, width uint) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, int(width))
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", s, err)
	}
	return v, nil
}

// register erases the storage type parameter so the CLI can pick a register
// width at runtime.
type register interface {
	width() uint
	raw() uint64
	setRaw(v uint64)
	fields() []fieldInfo
	get(name string) (uint64, error)
	set(name string, v uint64, cfgs ...bitfield.Config) error
	describe() string
}

type fieldInfo struct {
	name   string
	width  uint
	offset uint
}

func newRegister(width uint, spec string) (register, error) {
	switch width {
	case 8:
		return newReg[uint8](spec)
	case 16:
		return newReg[uint16](spec)
	case 32:
		return newReg[uint32](spec)
	case 64:
		return newReg[uint64](spec)
	default:
		return nil, fmt.Errorf("unsupported register width %d (want 8, 16, 32 or 64)", width)
	}
}

type reg[S bitfield.Uint] struct {
	rec *bitfield.Record[S]
}

func newReg[S bitfield.Uint](spec string) (register, error) {
	l, err := bitfield.Parse[S](spec)
	if err != nil {
		return nil, err
	}
	return reg[S]{rec: l.NewRecord()}, nil
}

func (r reg[S]) width() uint      { return r.rec.Layout().Width() }
func (r reg[S]) raw() uint64      { return uint64(r.rec.Raw()) }
func (r reg[S]) setRaw(v uint64)  { r.rec.SetRaw(S(v)) }
func (r reg[S]) describe() string { return r.rec.Layout().String() }

func (r reg[S]) fields() []fieldInfo {
	fs := r.rec.Layout().Fields()
	infos := make([]fieldInfo, len(fs))
	for i, f := range fs {
		infos[i] = fieldInfo{name: f.Name(), width: f.Width(), offset: f.Offset()}
	}
	return infos
}

func (r reg[S]) get(name string) (uint64, error) {
	return bitfield.GetNamed[uint64](r.rec, name)
}

func (r reg[S]) set(name string, v uint64, cfgs ...bitfield.Config) error {
	return bitfield.SetNamed(r.rec, name, v, cfgs...)
}
