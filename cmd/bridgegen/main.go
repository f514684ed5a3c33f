// Command bridgegen writes the per-dtype façade set of package bridge.
//
// Every façade is an expansion of one template over the closed dtype list, so
// adding a scalar type means adding one entry to dtypes below (and its tag to
// the dtype registry) and re-running go generate.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"k8s.io/klog/v2"
)

//go:embed facades.tmpl
var facadesTemplate string

// dtypeEntry describes one façade.
type dtypeEntry struct {
	Suffix string // Type name suffix, e.g. "F32" for TensorF32
	GoType string // Element type
	DType  string // Tag constant in the tensor package
}

var dtypes = []dtypeEntry{
	{Suffix: "I8", GoType: "int8", DType: "Int8"},
	{Suffix: "U8", GoType: "uint8", DType: "Uint8"},
	{Suffix: "I16", GoType: "int16", DType: "Int16"},
	{Suffix: "U16", GoType: "uint16", DType: "Uint16"},
	{Suffix: "I32", GoType: "int32", DType: "Int32"},
	{Suffix: "U32", GoType: "uint32", DType: "Uint32"},
	{Suffix: "I64", GoType: "int64", DType: "Int64"},
	{Suffix: "U64", GoType: "uint64", DType: "Uint64"},
	{Suffix: "F32", GoType: "float32", DType: "Float32"},
	{Suffix: "F64", GoType: "float64", DType: "Float64"},
}

// Options configures a generation run.
type Options struct {
	Out     string // Output file
	Package string // Package clause of the output
	Import  string // Import path of the tensor package
}

func main() {
	ctx := context.Background()
	err := run(ctx)
	if err != nil {
		klog.ErrorS(err, "Generation failed")
		klog.Flush()
		os.Exit(1)
	}
}

func run(_ context.Context) error {
	var opts Options
	flag.StringVar(&opts.Out, "out", "facades_gen.go", "output file")
	flag.StringVar(&opts.Package, "pkg", "bridge", "package name of the generated file")
	flag.StringVar(&opts.Import, "import", "github.com/born-ml/tensorbridge/tensor", "import path of the tensor package")

	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	src, err := generate(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.Out, src, 0o644); err != nil { //nolint:gosec // generated source is world-readable
		return fmt.Errorf("writing %q: %w", opts.Out, err)
	}
	klog.InfoS("Wrote facades", "out", opts.Out, "package", opts.Package, "types", len(dtypes))
	return nil
}

// generate renders and gofmts the façade file.
func generate(opts Options) ([]byte, error) {
	tmpl, err := template.New("facades").Parse(facadesTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Options
		Types []dtypeEntry
	}{Options: opts, Types: dtypes}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
