// Command notekit inserts footnote and cross-reference entries into a
// document and prints the result in one of several views.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/JuniperNotes/core/errors"
	"github.com/FocuswithJustin/JuniperNotes/core/note"
	"github.com/FocuswithJustin/JuniperNotes/core/richtext"
	"github.com/FocuswithJustin/JuniperNotes/core/usfm"
	"github.com/FocuswithJustin/JuniperNotes/internal/logging"
)

const version = "0.1.0"

// autoCaller makes each note's caller its own note ID.
const autoCaller = "auto"

// CLI defines the command-line interface for notekit.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"warn" env:"NOTEKIT_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" env:"NOTEKIT_LOG_FORMAT" enum:"json,text" help:"Log format (json, text)"`

	Insert  InsertCmd  `cmd:"" help:"Insert notes into a document and print it"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// Env carries what commands need from the process.
type Env struct {
	Ctx context.Context
	Out io.Writer
}

// InsertCmd appends notes to a document seeded with text.
type InsertCmd struct {
	Seed    string `name:"seed" help:"Text the document starts with"`
	Style   string `name:"style" default:"f" env:"NOTEKIT_STYLE" help:"Paragraph style of the note paragraph"`
	Caller  string `name:"caller" default:"auto" help:"Caller glyph; 'auto' uses the note ID"`
	ID      int    `name:"id" default:"1" help:"ID of the first note"`
	Ref     string `name:"ref" help:"Reference such as 3.16, 3:16 or JHN 3:16 (overrides --chapter/--verse)"`
	Chapter int    `name:"chapter" default:"1" help:"Chapter number"`
	Verse   int    `name:"verse" default:"1" help:"Verse number"`
	Count   int    `name:"count" default:"1" help:"Number of notes to insert"`
	Output  string `name:"output" short:"o" default:"text" env:"NOTEKIT_OUTPUT" enum:"text,runs,markup,usfm,delta,flat" help:"Output view"`
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run inserts the notes and writes the requested view.
func (c *InsertCmd) Run(env *Env) error {
	chapter, verse := c.Chapter, c.Verse
	if c.Ref != "" {
		ref, err := note.ParseReference(c.Ref)
		if err != nil {
			return err
		}
		chapter, verse = ref.Chapter, ref.Verse
	}
	if c.Count < 1 {
		return errors.NewValidation("count", "must be at least 1")
	}

	buf := richtext.NewBufferString(c.Seed)
	rec := richtext.NewRecorder(buf)
	logging.InfoContext(env.Ctx, "document_seeded", "length", buf.Length(), "checksum", buf.Checksum())
	for i := 0; i < c.Count; i++ {
		id := c.ID + i
		caller := c.Caller
		if caller == autoCaller {
			caller = strconv.Itoa(id)
		}
		spec := note.Spec{Style: c.Style, Caller: caller, NoteID: id, Chapter: chapter, Verse: verse}

		end, err := note.Insert(rec, spec)
		if err != nil {
			logging.CommandError(env.Ctx, "insert", err, "note_id", id)
			return errors.Wrapf(err, "insert note %d", id)
		}
		logging.NoteInserted(env.Ctx, id, spec.Style, spec.Reference(), end, buf.Length(), "caller", caller)
	}

	logging.DebugContext(env.Ctx, "document_ready", "length", buf.Length(), "commands", len(rec.Commands()))
	if err := writeView(env.Out, c.Output, buf, rec); err != nil {
		logging.CommandError(env.Ctx, "insert", err, "view", c.Output)
		return err
	}
	logging.DebugContext(env.Ctx, "view_written", "view", c.Output)
	return nil
}

// Run prints the version.
func (c *VersionCmd) Run(env *Env) error {
	_, err := fmt.Fprintf(env.Out, "notekit version %s\n", version)
	return err
}

func writeView(w io.Writer, view string, buf *richtext.Buffer, rec *richtext.Recorder) error {
	switch view {
	case "text":
		_, err := fmt.Fprintf(w, "%s\nchecksum: %s\n", buf.Text(), buf.Checksum())
		return err
	case "runs":
		return writeJSON(w, buf.Runs())
	case "markup":
		_, err := fmt.Fprintln(w, richtext.MarkupString(buf))
		return err
	case "usfm":
		_, err := io.WriteString(w, usfm.FromBuffer(buf))
		return err
	case "delta":
		return writeJSON(w, rec.Delta())
	case "flat":
		texts, formats := buf.Flatten()
		for i := range texts {
			if _, err := fmt.Fprintf(w, "%-12s %q\n", formats[i], texts[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.NewUnsupported("output", view)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// run parses args, configures logging and executes the selected command.
func run(args []string, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("notekit"),
		kong.Description("Juniper Notes - insert footnote and cross-reference entries"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)

	reqCtx := logging.WithRequestID(context.Background(), logging.NewRequestID())
	return ctx.Run(&Env{Ctx: reqCtx, Out: stdout})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "notekit: %v\n", err)
		os.Exit(1)
	}
}
