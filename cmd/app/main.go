package main

import (
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/0x0FACED/go-skeleton/pkg/logger"
	"github.com/0x0FACED/go-skeleton/pkg/polyio"
	"github.com/0x0FACED/go-skeleton/pkg/render"
	"github.com/0x0FACED/go-skeleton/pkg/shapes"
	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/0x0FACED/go-skeleton/static"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

const randomKind = "random"

// Параметры формы по умолчанию
type formDefaults struct {
	Shape    string  `yaml:"shape"`
	Vertices int     `yaml:"vertices"`
	Size     float64 `yaml:"size"`
	Levels   int     `yaml:"levels"`
}

type appConfig struct {
	Addr     string          `yaml:"addr"`
	Defaults formDefaults    `yaml:"defaults"`
	Skeleton skeleton.Config `yaml:"skeleton"`
}

func defaultConfig() appConfig {
	return appConfig{
		Addr: ":8080",
		Defaults: formDefaults{
			Shape:    randomKind,
			Vertices: 12,
			Size:     1000,
			Levels:   4,
		},
	}
}

func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

type server struct {
	cfg appConfig
}

// Читаем форму, пустые и битые значения заменяем значениями по умолчанию
func (s *server) params(r *http.Request) formDefaults {
	p := s.cfg.Defaults
	if r.Method != http.MethodPost {
		return p
	}
	r.ParseForm()
	if v := r.FormValue("shape"); v != "" {
		p.Shape = v
	}
	if v, err := strconv.Atoi(r.FormValue("vertices")); err == nil && v >= 3 {
		p.Vertices = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("size"), 64); err == nil && v > 0 {
		p.Size = v
	}
	if v, err := strconv.Atoi(r.FormValue("levels")); err == nil && v >= 0 {
		p.Levels = v
	}
	return p
}

func shapeOptions(selected string) string {
	var b strings.Builder
	kinds := append([]string{randomKind}, kindNames()...)
	for _, k := range kinds {
		sel := ""
		if k == selected {
			sel = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, k, sel, k)
	}
	return b.String()
}

func kindNames() []string {
	out := make([]string, len(shapes.Kinds))
	for i, k := range shapes.Kinds {
		out[i] = string(k)
	}
	return out
}

func (s *server) generate(p formDefaults) polyio.Shape {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if p.Shape == randomKind {
		return shapes.Random(rng, p.Vertices, p.Size)
	}
	return shapes.Generate(rng, shapes.Kind(p.Shape), p.Vertices, p.Size)
}

// http обработчик страницы со скелетом и формой для ввода данных
func (s *server) skeletonHandler(w http.ResponseWriter, r *http.Request) {
	p := s.params(r)
	shape := s.generate(p)

	logger := logger.New()
	defer logger.ClearLogs()

	cfg := s.cfg.Skeleton
	cfg.Logger = logger

	fmt.Fprintln(w, static.Part1)
	fmt.Fprintf(w, static.Form, shapeOptions(p.Shape), p.Vertices, p.Size, p.Levels)

	sk, err := shape.Compute(r.Context(), cfg)
	if err != nil {
		fmt.Fprintf(w, "<p>Ошибка построения %s: %s</p>\n", html.EscapeString(shape.Name), html.EscapeString(err.Error()))
	} else {
		scatter := skeletonToEcharts(shape.Name, sk, render.Levels(sk, p.Levels))
		if err := scatter.Render(w); err != nil {
			fmt.Println("Ошибка рендеринга диаграммы:", err)
		}
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	for _, log := range logger.HTMLLogs() {
		fmt.Fprintln(w, log)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	app := kingpin.New("app", "Веб-просмотрщик прямого скелета.")
	addr := app.Flag("addr", "Адрес сервера.").String()
	configPath := app.Flag("config", "YAML с настройками.").Short('c').String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("Ошибка конфигурации:", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	// имена фигур должны различаться между запусками
	petname.NonDeterministicMode()

	s := &server{cfg: cfg}
	http.HandleFunc("/", s.skeletonHandler)
	fmt.Printf("Сервер запущен на http://localhost%s\n", cfg.Addr)
	err = http.ListenAndServe(cfg.Addr, nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
