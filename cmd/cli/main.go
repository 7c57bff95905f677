package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	xorgbackend "github.com/honeybbq/xorgconf/backend/xorg"
	domain "github.com/honeybbq/xorgconf/domain/xorg"
	xorgrenderer "github.com/honeybbq/xorgconf/pkg/renderer/xorg"
	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

// multiFlag 收集可重复的 -input 参数，顺序即层叠顺序。
type multiFlag []string

func (f *multiFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *multiFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var inputs multiFlag
	var (
		mode           = flag.String("mode", "render", "operation mode: render | parse")
		format         = flag.String("format", "", "input format (yaml|toml|json); default: by file extension")
		outputPath     = flag.String("output", "", "output path (default: stdout)")
		tag            = flag.String("tag", "", "generation tag written as a leading comment")
		skipIncomplete = flag.Bool("skip-incomplete", false, "drop incomplete sections instead of failing")
	)
	flag.Var(&inputs, "input", "input spec path (repeatable; later layers override earlier ones)")
	flag.Parse()

	backend := xorgbackend.New(
		xorgrenderer.NewPlainTextRenderer(),
		xorgrenderer.NewNotImplementedParser(),
	)

	ctx := context.Background()
	switch strings.ToLower(*mode) {
	case "render":
		spec, err := loadSpec(inputs, *format)
		if err != nil {
			exitWithError(err)
		}
		opts := xorgconf.RenderOptions{
			SkipIncomplete: *skipIncomplete,
			GenerationTag:  *tag,
		}
		bundle, err := backend.RenderSpec(ctx, spec, opts)
		if err != nil {
			exitWithError(fmt.Errorf("render: %w", err))
		}
		if err := writeOutput(*outputPath, bundle); err != nil {
			exitWithError(fmt.Errorf("write output: %w", err))
		}
	case "parse":
		data, err := readInput(firstOrStdin(inputs))
		if err != nil {
			exitWithError(fmt.Errorf("read input: %w", err))
		}
		bundle := &xorgconf.Bundle{
			Packages: []xorgconf.Package{{Name: "xorg.conf", Content: data}},
		}
		if _, err := backend.Parse(ctx, bundle, xorgconf.ParseOptions{}); err != nil {
			exitWithError(err)
		}
	default:
		exitWithError(fmt.Errorf("unknown mode %q (use render|parse)", *mode))
	}
}

// loadSpec 读取全部输入层，按顺序深合并后解码成类型化 Spec。
func loadSpec(inputs []string, formatOverride string) (*domain.Spec, error) {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	layers := make([]map[string]any, 0, len(inputs))
	for _, path := range inputs {
		data, err := readInput(path)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
		format := domain.Format(formatOverride)
		if format == "" {
			format = domain.DetectFormat(path)
		}
		values, err := domain.UnmarshalMap(data, format)
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", path, err)
		}
		layers = append(layers, values)
	}

	merged, err := xorgconf.MergeMaps(layers, nil)
	if err != nil {
		return nil, err
	}
	return domain.DecodeMap(merged)
}

func firstOrStdin(inputs []string) string {
	if len(inputs) == 0 {
		return "-"
	}
	return inputs[0]
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, bundle *xorgconf.Bundle) error {
	var content []byte
	if len(bundle.Packages) > 0 {
		content = bundle.Packages[0].Content
	}
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
