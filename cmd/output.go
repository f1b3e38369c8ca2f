package cmd

import (
	"fmt"
	"image"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/traPtitech/thumbparam/service/thumbnail"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// outputFormat 出力形式 (yaml, json)
var outputFormat = outputYAML

// paramOutput param, presetコマンドの出力
type paramOutput struct {
	Name      string            `yaml:"name,omitempty" json:"name,omitempty"`
	Parameter thumbnail.Summary `yaml:"parameter" json:"parameter"`
	Target    *sizeOutput       `yaml:"target,omitempty" json:"target,omitempty"`
}

type sizeOutput struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// parseSourceSize "640x480"形式の元画像サイズを解釈します
func parseSourceSize(s string) (image.Point, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return image.Point{}, fmt.Errorf("invalid source size %q: expected WIDTHxHEIGHT", s)
	}
	return image.Pt(w, h), nil
}

func newParamOutput(name string, p *thumbnail.Parameter, source string) (paramOutput, error) {
	out := paramOutput{Name: name, Parameter: p.Summary()}
	if source == "" {
		return out, nil
	}
	src, err := parseSourceSize(source)
	if err != nil {
		return out, err
	}
	size, err := p.ResolveSize(src.X, src.Y)
	if err != nil {
		return out, err
	}
	out.Target = &sizeOutput{Width: size.X, Height: size.Y}
	return out, nil
}

// writeOutput outputFormatの形式でvを書き出します
func writeOutput(w io.Writer, v any) error {
	switch outputFormat {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
