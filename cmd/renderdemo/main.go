package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"cv-mailer/resume/model"
	"cv-mailer/resume/render"
)

func init() {
	version.SetDefaultModule("cv-mailer/cmd/renderdemo")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	style     string
	fontSize  string
	accent    string
	gradStart string
	gradEnd   string
	outPath   string
	force     bool
	showVer   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("renderdemo", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.style, "style", "s", "", "Template: klasyczne|techniczne|nowoczesne (overrides the form)")
	flags.StringVar(&opts.fontSize, "font-size", "", "Text size: small|standard|large (overrides the form)")
	flags.StringVar(&opts.accent, "accent", "", "Accent color, #rrggbb")
	flags.StringVar(&opts.gradStart, "grad-start", "", "Gradient start color, #rrggbb")
	flags.StringVar(&opts.gradEnd, "grad-end", "", "Gradient end color, #rrggbb")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output PDF path instead of stdout")
	flags.BoolVarP(&opts.force, "force", "f", false, "Write the PDF to stdout even if it is a terminal")
	flags.BoolVarP(&opts.showVer, "version", "v", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: renderdemo [flags] [form.json|-]\n")
		fmt.Fprintln(stderr, "\nWithout an input a built-in sample form is rendered.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVer {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	form, err := loadForm(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read form: %v\n", err)
		return 1
	}
	opts.apply(&form)

	if opts.outPath == "" && isTerminal(stdout) && !opts.force {
		fmt.Fprintln(stderr, "refusing to write a PDF to a terminal; use --output or redirect stdout")
		return 1
	}

	doc, err := render.RenderCV(form)
	if err != nil {
		fmt.Fprintf(stderr, "render failed: %v\n", err)
		return 1
	}
	if doc.Overflow {
		fmt.Fprintf(stderr, "warning: content runs into the footer of the %s template\n", doc.Style)
	}

	if opts.outPath == "" {
		if _, err := stdout.Write(doc.Bytes); err != nil {
			fmt.Fprintf(stderr, "write failed: %v\n", err)
			return 1
		}
		return 0
	}

	if err := writeOutput(opts.outPath, doc.Bytes); err != nil {
		fmt.Fprintf(stderr, "write failed: %v\n", err)
		return 1
	}
	if err := validateRendered(opts.outPath, form); err != nil {
		fmt.Fprintf(stderr, "render validation failed: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "OK: wrote %s (%s)\n", opts.outPath, doc.Style)
	return 0
}

func (o options) apply(form *model.ApplicantForm) {
	overrides := []struct {
		value string
		dst   *string
	}{
		{o.style, &form.Style},
		{o.fontSize, &form.FontSize},
		{o.accent, &form.Accent},
		{o.gradStart, &form.GradStart},
		{o.gradEnd, &form.GradEnd},
	}
	for _, ov := range overrides {
		if ov.value != "" {
			*ov.dst = ov.value
		}
	}
}

func loadForm(args []string, stdin io.Reader) (model.ApplicantForm, error) {
	if len(args) == 0 {
		return sampleForm(), nil
	}
	if len(args) > 1 {
		return model.ApplicantForm{}, fmt.Errorf("expected one input, got %d", len(args))
	}
	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return model.ApplicantForm{}, err
	}
	return model.DecodeForm(raw)
}

func writeOutput(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

// validateRendered reads the PDF back and checks the applicant name made it
// onto the page.
func validateRendered(path string, form model.ApplicantForm) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text, err := render.ExtractText(data)
	if err != nil {
		return err
	}
	want := render.Normalize(form.DisplayName())
	if !strings.Contains(text, want) {
		return fmt.Errorf("name %q not found in rendered text", want)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func sampleForm() model.ApplicantForm {
	return model.ApplicantForm{
		Name:       "Katarzyna Wiśniewska",
		Email:      "k.wisniewska@example.com",
		Phone:      "+48 512 345 678",
		Position:   "Starsza programistka backend",
		Experience: "2021–obecnie: Acme Logistyka, usługi wyznaczania tras w Go\n2018–2021: Blue Harbor, potoki danych zgodności",
		Education:  "Politechnika Gdańska, informatyka (mgr)",
		Skills:     "Go\nPostgreSQL\nKubernetes\nOpenTelemetry",
		Languages:  "polski (ojczysty), angielski (C1), niemiecki (B1)",
		ExtraInfo:  "Lubię upraszczać systemy i mierzyć ich zachowanie w produkcji.",
		Style:      string(model.StyleModern),
		GradStart:  "#1e3c72",
		GradEnd:    "#2a5298",
		FontSize:   string(model.FontSizeStandard),
	}
}
