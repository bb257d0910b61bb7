package evaluation

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reporter renders evaluation results.
type Reporter interface {
	Report(res *Result) error
}

// NewReporter returns the reporter for format ("text" or "yaml") writing to w.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case "", "text":
		return &TextReporter{W: w}, nil
	case "yaml":
		return &YAMLReporter{W: w}, nil
	}
	return nil, fmt.Errorf("evaluation: unknown report format %q", format)
}

// TextReporter writes one block per misclassified document followed by the
// error rate.
type TextReporter struct {
	W io.Writer
}

func (r *TextReporter) Report(res *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s (%s, %d features, %d train, %d held out)\n",
		res.RunID, res.Mode, res.Vocabulary, len(res.Train), len(res.Test))
	for _, m := range res.Misclassified {
		fmt.Fprintf(&b, "misclassified #%d %s: %s classified as %s\n", m.Index, m.Name, m.Label, m.Predicted)
		fmt.Fprintf(&b, "  tokens: %s\n", strings.Join(m.Tokens, " "))
	}
	fmt.Fprintf(&b, "error rate: %.2f%%\n", res.ErrorRate)
	_, err := io.WriteString(r.W, b.String())
	return err
}

// YAMLReporter writes each result as a YAML document.
type YAMLReporter struct {
	W io.Writer
}

type yamlMisclassification struct {
	Index     int      `yaml:"index"`
	Name      string   `yaml:"name"`
	Label     string   `yaml:"label"`
	Predicted string   `yaml:"predicted"`
	Tokens    []string `yaml:"tokens,flow"`
}

type yamlResult struct {
	RunID         string                  `yaml:"run_id"`
	Mode          string                  `yaml:"mode"`
	Vocabulary    int                     `yaml:"vocabulary"`
	Train         int                     `yaml:"train"`
	Test          []int                   `yaml:"test,flow"`
	SpamPrior     float64                 `yaml:"spam_prior"`
	Misclassified []yamlMisclassification `yaml:"misclassified"`
	ErrorRate     float64                 `yaml:"error_rate"`
}

func (r *YAMLReporter) Report(res *Result) error {
	out := yamlResult{
		RunID:         res.RunID.String(),
		Mode:          res.Mode.String(),
		Vocabulary:    res.Vocabulary,
		Train:         len(res.Train),
		Test:          res.Test,
		SpamPrior:     res.SpamPrior,
		Misclassified: make([]yamlMisclassification, 0, len(res.Misclassified)),
		ErrorRate:     res.ErrorRate,
	}
	for _, m := range res.Misclassified {
		out.Misclassified = append(out.Misclassified, yamlMisclassification{
			Index:     m.Index,
			Name:      m.Name,
			Label:     m.Label.String(),
			Predicted: m.Predicted.String(),
			Tokens:    m.Tokens,
		})
	}
	if _, err := io.WriteString(r.W, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(r.W)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
