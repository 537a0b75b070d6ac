package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/0x0FACED/go-skeleton/pkg/logger"
	"github.com/0x0FACED/go-skeleton/pkg/polyio"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// options are the parsed command line.
type options struct {
	Input     string
	Format    string
	Clockwise bool
	TrustCCW  bool
	Depths    []float64
	Levels    int
	Faces     bool
	Caps      bool
	GeoJSON   string
	SVG       string
	PNG       string
	Config    string
	Verbose   bool
	NoColor   bool
}

func parseFlags(args []string) (options, error) {
	var o options
	app := kingpin.New("skeleton", "Строит прямой скелет простого многоугольника.")
	app.HelpFlag.Short('h')

	app.Arg("input", "Файл с многоугольниками, - для stdin.").Default("-").StringVar(&o.Input)
	app.Flag("format", "Формат входа.").Short('f').Default(string(polyio.FormatAuto)).
		EnumVar(&o.Format, "auto", "text", "yaml", "svg")
	app.Flag("clockwise", "Вершины заданы по часовой стрелке (ось Y вниз).").BoolVar(&o.Clockwise)
	app.Flag("trust-ccw", "Не проверять ориентацию.").BoolVar(&o.TrustCCW)
	app.Flag("depth", "Глубина среза, можно повторять.").Short('d').Float64ListVar(&o.Depths)
	app.Flag("levels", "Число равномерных срезов до полного схлопывания.").Default("0").IntVar(&o.Levels)
	app.Flag("faces", "Печатать грани.").BoolVar(&o.Faces)
	app.Flag("caps", "Печатать срезы.").BoolVar(&o.Caps)
	app.Flag("geojson", "Записать GeoJSON в файл.").StringVar(&o.GeoJSON)
	app.Flag("svg", "Записать SVG в файл.").StringVar(&o.SVG)
	app.Flag("png", "Записать PNG в файл.").StringVar(&o.PNG)
	app.Flag("config", "YAML с настройками.").Short('c').StringVar(&o.Config)
	app.Flag("verbose", "Подробные логи.").Short('v').BoolVar(&o.Verbose)
	app.Flag("no-color", "Без цветов в логах.").BoolVar(&o.NoColor)

	_, err := app.Parse(args)
	return o, err
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка аргументов:", err)
		os.Exit(2)
	}

	level := zapcore.InfoLevel
	if o.Verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(os.Stderr, level, !o.NoColor)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in, err := openInput(o.Input)
	if err != nil {
		log.Error("Не удалось открыть вход", zap.Error(err))
		os.Exit(1)
	}
	defer in.Close()

	if err := run(ctx, o, in, os.Stdout, log); err != nil {
		log.Error("Ошибка", zap.Error(err))
		os.Exit(1)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
