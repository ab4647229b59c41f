// Command stellagc-demo is an interactive mutator harness for stella-gc.
// It never parses or executes Stella source — the spec treats "the
// interpreter or compiled program emitting allocation calls" as an
// out-of-scope collaborator — it just exercises every collector operation
// (alloc, push/pop root, read/write barrier, collect, dump) from a small
// REPL so the cursors and counters can be watched move.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/google/shlex"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"

	"github.com/stella-lang/stella-gc/gc"
)

// frame models the mutator's own local root slots: named Word variables,
// created on first mention, that a script can push/pop as roots.
type frame struct {
	slots map[string]*gc.Word
}

func newFrame() *frame {
	return &frame{slots: map[string]*gc.Word{}}
}

func (f *frame) slot(name string) *gc.Word {
	s, ok := f.slots[name]
	if !ok {
		s = new(gc.Word)
		f.slots[name] = s
	}
	return s
}

func main() {
	interactive := flag.Bool("interactive", false, "wait for a keypress between commands")
	logPath := flag.String("log", "", "also write diagnostic dumps to this file, under an exclusive lock")
	flag.Parse()

	out := colorable.NewColorableStdout()

	var logFile *os.File
	var lock *flock.Flock
	if *logPath != "" {
		var err error
		logFile, err = os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "stellagc-demo:", err)
			os.Exit(1)
		}
		defer logFile.Close()

		lock = flock.New(*logPath + ".lock")
	}

	opts := gc.DefaultOptions()
	opts.Out = out
	h := gc.NewHeap(opts)

	fr := newFrame()

	var ttyDev *tty.TTY
	if *interactive {
		var err error
		ttyDev, err = tty.Open()
		if err != nil {
			fmt.Fprintln(os.Stderr, "stellagc-demo: --interactive requires a tty:", err)
			os.Exit(1)
		}
		defer ttyDev.Close()
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(out, "stellagc-demo — type 'help' for commands")

	for scanner.Scan() {
		line := scanner.Text()
		if err := runCommand(h, fr, line, out); err != nil {
			fmt.Fprintln(out, "error:", err)
		}

		if logFile != nil {
			if err := lock.Lock(); err == nil {
				h.SetOut(logFile)
				h.PrintState()
				h.SetOut(out)
				lock.Unlock()
			}
		}

		if ttyDev != nil {
			fmt.Fprint(out, "-- press any key to continue --")
			ttyDev.ReadRune()
			fmt.Fprintln(out)
		}
	}
}

func runCommand(h *gc.Heap, fr *frame, line string, out io.Writer) error {
	tokens, err := shlex.Split(line)
	if err != nil || len(tokens) == 0 {
		return err
	}

	switch tokens[0] {
	case "help":
		fmt.Fprintln(out, "alloc <tag> <slot-name>... | push <slot> | pop <slot> | read <slot> <i> | write <slot> <i> <slot> | collect | dump | stats | quit")
	case "alloc":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: alloc <tag> <slot-name>...")
		}
		tag, err := parseTag(tokens[1])
		if err != nil {
			return err
		}
		fields := make([]gc.Word, 0, len(tokens)-2)
		for _, name := range tokens[2:] {
			fields = append(fields, *fr.slot(name))
		}
		result := h.Alloc(tag, fields)
		fmt.Fprintf(out, "allocated %#x\n", result)
	case "push":
		if len(tokens) != 2 {
			return fmt.Errorf("usage: push <slot>")
		}
		h.PushRoot(fr.slot(tokens[1]))
	case "pop":
		if len(tokens) != 2 {
			return fmt.Errorf("usage: pop <slot>")
		}
		h.PopRoot(fr.slot(tokens[1]))
	case "read":
		if len(tokens) != 3 {
			return fmt.Errorf("usage: read <slot> <field-index>")
		}
		i, err := strconv.Atoi(tokens[2])
		if err != nil {
			return err
		}
		h.ReadBarrier(*fr.slot(tokens[1]), i)
	case "write":
		if len(tokens) != 4 {
			return fmt.Errorf("usage: write <slot> <field-index> <value-slot>")
		}
		i, err := strconv.Atoi(tokens[2])
		if err != nil {
			return err
		}
		h.WriteBarrier(*fr.slot(tokens[1]), i, *fr.slot(tokens[3]))
	case "collect":
		// There is no public Collect(): mutators only ever trigger a
		// cycle indirectly, by allocating into an exhausted heap. Force
		// one by allocating and discarding zero-field Units until the
		// cycle counter moves.
		before := h.Stats().Cycles
		for h.Stats().Cycles == before {
			h.Alloc(gc.TagUnit, nil)
		}
	case "dump":
		h.PrintState()
	case "stats":
		h.PrintStats()
	case "quit":
		os.Exit(0)
	default:
		return fmt.Errorf("unknown command %q", tokens[0])
	}
	return nil
}

func parseTag(name string) (gc.Tag, error) {
	switch name {
	case "Zero":
		return gc.TagZero, nil
	case "Succ":
		return gc.TagSucc, nil
	case "False":
		return gc.TagFalse, nil
	case "True":
		return gc.TagTrue, nil
	case "Fn":
		return gc.TagFn, nil
	case "Ref":
		return gc.TagRef, nil
	case "Unit":
		return gc.TagUnit, nil
	case "Tuple":
		return gc.TagTuple, nil
	case "Inl":
		return gc.TagInl, nil
	case "Inr":
		return gc.TagInr, nil
	case "Empty":
		return gc.TagEmpty, nil
	case "Cons":
		return gc.TagCons, nil
	default:
		return 0, fmt.Errorf("unknown tag %q", name)
	}
}
