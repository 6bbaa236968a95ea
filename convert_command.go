package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/interview-pipeline/transcript"
)

func newConvertCommand() *cobra.Command {
	var (
		output       string
		pattern      string
		metadata     []string
		metadataFile string
	)

	cmd := &cobra.Command{
		Use:   "convert <transcript>",
		Short: "Convert a transcript to the JSON interview format",
		Long: "Text files are parsed line by line. JSON and YAML files are rebuilt around " +
			"the first transcript array found in them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			opts := transcript.ConvertOptions{}
			if pattern != "" {
				re, err := regexp.Compile(pattern)
				if err != nil {
					return fmt.Errorf("invalid --pattern: %w", err)
				}
				if re.SubexpIndex("dialogue") < 0 {
					return fmt.Errorf("invalid --pattern: missing (?P<dialogue>...) group")
				}
				opts.Pattern = re
			}
			meta := map[string]string{}
			if metadataFile != "" {
				fromFile, err := loadMetadataFile(metadataFile)
				if err != nil {
					return err
				}
				for k, v := range fromFile {
					meta[k] = v
				}
			}
			pairs, err := parseMetadata(metadata)
			if err != nil {
				return err
			}
			for k, v := range pairs {
				meta[k] = v
			}
			opts.Metadata = meta

			var (
				doc map[string]any
				n   int
			)
			switch strings.ToLower(filepath.Ext(src)) {
			case ".json", ".yaml", ".yml":
				raw, err := transcript.LoadFile(src)
				if err != nil {
					return err
				}
				if doc, n, err = transcript.Restructure(raw, opts); err != nil {
					return fmt.Errorf("%s: %w", src, err)
				}
			default:
				in, err := os.Open(src)
				if err != nil {
					return &transcript.FileError{Path: src, Err: err}
				}
				defer in.Close()
				if doc, n, err = transcript.Convert(in, opts); err != nil {
					return err
				}
			}

			if output == "" {
				output = defaultConvertOutput(src)
			}
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, append(b, '\n'), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d entries to %s\n", n, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output JSON path (default: input with .json extension)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Line regex with named groups speaker, time and dialogue")
	cmd.Flags().StringArrayVarP(&metadata, "metadata", "m", nil, "Interview metadata as key=value (repeatable)")
	cmd.Flags().StringVar(&metadataFile, "metadata-file", "", "JSON object of interview metadata; -m pairs win")
	return cmd
}

// defaultConvertOutput never returns src itself, so a JSON input is not overwritten.
func defaultConvertOutput(src string) string {
	base := strings.TrimSuffix(src, filepath.Ext(src))
	if out := base + ".json"; out != src {
		return out
	}
	return base + ".converted.json"
}

func loadMetadataFile(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode metadata file %s: %w", path, err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			out[k] = v
		case nil:
		default:
			out[k] = fmt.Sprint(v)
		}
	}
	return out, nil
}
