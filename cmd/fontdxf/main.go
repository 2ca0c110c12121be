/*
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Command fontdxf converts TrueType/OpenType glyph outlines into a DXF
// ENTITIES stream of polylines with bulge arcs, one character per layer,
// with per-glyph dimension records for minx/maxx/miny/maxy/advx/advy.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fontdxf/internal/config"
	"fontdxf/internal/crash"
	"fontdxf/internal/export"
	"fontdxf/internal/font"
	applog "fontdxf/internal/log"
	"fontdxf/internal/trace"
	"fontdxf/internal/version"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: fontdxf -f font.ttf [options] ["text"]

Converts glyph outlines to DXF polylines with arc (bulge) vertices.
With a text argument, the text is laid out along a line; without one
(or with -F) the whole printable ASCII range is converted, one layer
per character.

options:
`)
	flag.PrintDefaults()
}

func main() {
	var (
		fontPath    = flag.String("f", "", "TTF/OTF font file (required)")
		unitsPerArc = flag.Float64("s", 0, "design units of curve length per biarc pair (default 200)")
		steps       = flag.Int("e", 0, "fixed sample count of the length/extents estimation pass (default 100)")
		layer       = flag.String("L", "", "layer name for text mode entities")
		linescale   = flag.Int("l", 0, "bitmap tracing pixel size; 0 disables, minimum 24")
		fontMode    = flag.Bool("F", false, "convert the whole printable ASCII range")
		outPath     = flag.String("o", "", "output DXF file (default stdout)")
		previewPath = flag.String("preview", "", "also write a PDF preview of the traced entities")
		configPath  = flag.String("config", "", "YAML config file")
		writeConfig = flag.String("writeconfig", "", "write the effective config to this file and exit")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()
	defer crash.Recover()

	if *showVersion {
		fmt.Println("fontdxf", version.String())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	applog.Init(applog.Options(cfg.Logging))
	l := applog.WithComponent("cli")

	// Flags override config.
	if *unitsPerArc > 0 {
		cfg.Trace.UnitsPerBiarc = *unitsPerArc
	}
	if *steps > 1 {
		cfg.Trace.EstimateSteps = *steps
	}
	if *layer != "" {
		cfg.Output.Layer = *layer
	}
	if *linescale > 0 {
		cfg.Output.Linescale = *linescale
		if cfg.Output.Linescale < 24 {
			cfg.Output.Linescale = 24
		}
	}
	if *fontMode {
		cfg.Output.FontMode = true
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			l.Error("write config failed", slog.Any("err", err))
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		l.Info("config written", slog.String("file", *writeConfig))
		return
	}

	if *fontPath == "" {
		fmt.Fprintln(os.Stderr, "Please use -f to specify a .ttf font file")
		usage()
		os.Exit(2)
	}
	text := flag.Arg(0)
	if text == "" {
		cfg.Output.FontMode = true
	}

	face, err := font.Load(*fontPath)
	if err != nil {
		l.Error("load font failed", slog.Any("err", err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	l.Info("font loaded",
		slog.String("file", *fontPath),
		slog.String("family", face.Name()),
		slog.Bool("font_mode", cfg.Output.FontMode),
		slog.Int("estimate_steps", cfg.Trace.EstimateSteps),
		slog.Float64("units_per_biarc", cfg.Trace.UnitsPerBiarc))

	opt := export.Options{
		Trace: trace.Options{
			EstimateSteps: cfg.Trace.EstimateSteps,
			UnitsPerBiarc: cfg.Trace.UnitsPerBiarc,
		},
		Layer:     cfg.Output.Layer,
		Linescale: cfg.Output.Linescale,
	}

	run := func(dev export.Device) error {
		if cfg.Output.FontMode {
			return export.RenderFont(dev, face, opt)
		}
		return export.RenderText(dev, face, text, opt)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			l.Error("create output failed", slog.Any("err", err))
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := run(export.NewDXF(out)); err != nil {
		l.Error("conversion failed", slog.Any("err", err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *previewPath != "" {
		f, err := os.Create(*previewPath)
		if err != nil {
			l.Error("create preview failed", slog.Any("err", err))
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		err = run(export.NewPreview(f))
		if err == nil {
			err = f.Close()
		} else {
			f.Close()
		}
		if err != nil {
			l.Error("preview failed", slog.Any("err", err))
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		l.Info("preview written", slog.String("file", *previewPath))
	}
}
