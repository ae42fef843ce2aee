// Command ls-starcards renders constellation cards, sky views and all-sky
// maps from the HYG star catalog, and runs a terminal constellation quiz.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"gonum.org/v1/plot/vg"

	"github.com/litescript/ls-starcards/internal/astro"
	"github.com/litescript/ls-starcards/internal/catalog"
	"github.com/litescript/ls-starcards/internal/chart"
	"github.com/litescript/ls-starcards/internal/deck"
	"github.com/litescript/ls-starcards/internal/logging"
	"github.com/litescript/ls-starcards/internal/render"
	"github.com/litescript/ls-starcards/internal/ui"
)

// CLI flags for the render modes
var (
	cardID        string
	allCards      bool
	cardbackID    string
	skyViewMode   bool
	equatorialMap bool
	polarMap      string
	visibilityLat string
	deckMode      bool
	quizMode      bool
)

const timeLayout = "2006-01-02 15:04"

func main() {
	// Data files
	stars := flag.String("stars", "data/stars.tsv", "Star catalog file (ascii.csv format)")
	index := flag.String("constellations", "data/index.json", "Sky culture index JSON")
	namesPath := flag.String("names", "data/names.csv", "Constellation name translations")
	language := flag.String("language", "english", "Name column to use from the translation table")

	// Observer, for the sky view
	lat := flag.String("lat", "48.1 N", "Observer latitude, e.g. \"48.1 N\"")
	lon := flag.String("lon", "11.6 E", "Observer longitude, e.g. \"11.6 E\" (O for west)")
	when := flag.String("time", "", "Local observation time, \""+timeLayout+"\" (default now)")
	tz := flag.String("tz", "CET", "Time zone of the observation time")
	dst := flag.Bool("dst", false, "Observation time is daylight saving time")

	// Modes
	flag.StringVar(&cardID, "card", "", "Render one constellation card by its IAU id")
	flag.BoolVar(&allCards, "all-cards", false, "Render card sets for every constellation")
	flag.StringVar(&cardbackID, "cardback", "", "Render a card back by constellation id")
	flag.BoolVar(&skyViewMode, "sky-view", false, "Render the observer's sky view")
	flag.BoolVar(&equatorialMap, "equatorial-map", false, "Render the equatorial all-sky map")
	flag.StringVar(&polarMap, "polar-map", "", "Render a polar all-sky map (N or S)")
	flag.StringVar(&visibilityLat, "visibility", "", "Print visibility per constellation for a latitude, e.g. \"48.1 N\"")
	flag.BoolVar(&deckMode, "deck", false, "Render a print-and-play deck PDF")
	flag.BoolVar(&quizMode, "quiz", false, "Run the constellation quiz TUI")

	// Render options
	format := flag.String("format", "png", "Output format (png, svg, pdf)")
	dpi := flag.Int("dpi", 300, "Raster resolution")
	out := flag.String("out", "", "Output file, or directory for multi-file modes")
	tplName := flag.String("card-format", "tarot-round", "Card template (tarot-round, tarot-square)")
	bleed := flag.Float64("bleed", 0, "Print bleed in inches around each card")
	size := flag.Float64("size", 8, "Sky view and polar map size in inches")
	bestAR := flag.Bool("best-ar", true, "Rotate cards for the best aspect ratio fit")
	lines := flag.Bool("lines", true, "Draw constellation lines")
	grid := flag.Bool("grid", true, "Draw the coordinate grid on all-sky maps")
	asterisms := flag.Bool("asterisms", false, "Draw asterism lines")
	helpers := flag.Bool("helpers", false, "Draw star-hopping helper lines")
	starNames := flag.Bool("star-names", false, "Label named stars")
	parts := flag.Bool("parts", false, "Label constellation parts")
	showNames := flag.Bool("show-names", true, "Label constellations on maps")
	starColors := flag.Bool("star-colors", false, "Color stars by their B-V index")
	limitMag := flag.Float64("limit-mag", 6.5, "Faintest magnitude drawn outside constellations")
	fov := flag.Float64("fov", 0, "Field of view in degrees (mode default when zero)")
	starSize := flag.Float64("star-size", 0, "Star marker scale (mode default when zero)")
	cutHelpers := flag.Bool("cut-helpers", true, "Draw cut marks on deck sheets")
	seed := flag.Int64("seed", 0, "Quiz random seed (time-based when zero)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	outFormat, err := render.ParseFormat(*format)
	if err != nil {
		fatal(err)
	}
	tpl, err := chart.ParseTemplate(*tplName)
	if err != nil {
		fatal(err)
	}
	tpl.Bleed = *bleed

	logger.Debug("Loading star catalog from %s", *stars)
	cat, err := catalog.LoadStars(*stars)
	if err != nil {
		fatal(err)
	}
	set, err := catalog.LoadConstellations(*index)
	if err != nil {
		fatal(err)
	}
	cat.Annotate(set)
	names, err := catalog.LoadNames(*namesPath, *language)
	if err != nil {
		fatal(err)
	}
	logger.Info("Loaded %d stars, %d constellations", cat.Len(), len(set.MainIDs))

	pal := chart.DefaultPalette()
	cardOpts := chart.CardOptions{
		Lines:       *lines,
		BestAspect:  *bestAR,
		StarColors:  *starColors,
		Parts:       *parts,
		StarNames:   *starNames,
		LimitingMag: *limitMag,
		StarSize:    *starSize,
	}

	// Headless render modes. The quiz TUI is the default when no mode is
	// selected.
	headless := cardID != "" || allCards || cardbackID != "" || skyViewMode ||
		equatorialMap || polarMap != "" || visibilityLat != "" || deckMode
	if headless && quizMode {
		fatal(fmt.Errorf("-quiz cannot be combined with render modes"))
	}

	switch {
	case cardID != "":
		path := outOr(*out, cardID+outFormat.Ext())
		page := cardPage(outFormat, tpl, *dpi)
		if err := chart.DrawCard(page.Canvas, cat, set, names, cardID, tpl, pal, cardOpts); err != nil {
			fatal(err)
		}
		writePage(page, path, logger)

	case cardbackID != "":
		path := outOr(*out, cardbackID+"_back"+outFormat.Ext())
		page := cardPage(outFormat, tpl, *dpi)
		chart.DrawCardback(page.Canvas, names, cardbackID, tpl, pal.Cardback1, pal.Accent)
		writePage(page, path, logger)

	case allCards:
		dir := outOr(*out, "cards")
		opts := deck.Options{
			Format:   outFormat,
			DPI:      *dpi,
			Template: tpl,
			Palette:  pal,
			Card:     cardOpts,
		}
		for _, id := range set.MainIDs {
			if err := deck.WriteCardSet(dir, id, cat, set, names, opts); err != nil {
				fatal(err)
			}
			logger.Debug("Wrote card set %s", id)
		}
		logger.Info("Wrote %d card sets to %s", len(set.MainIDs), dir)

	case deckMode:
		path := outOr(*out, "deck.pdf")
		opts := deck.Options{
			Format:     render.PDF,
			DPI:        *dpi,
			Template:   tpl,
			Palette:    pal,
			Card:       cardOpts,
			CutHelpers: *cutHelpers,
		}
		if err := deck.WriteSheets(path, set.MainIDs, cat, set, names, opts); err != nil {
			fatal(err)
		}
		logger.Info("Wrote deck to %s", path)

	case skyViewMode:
		obs, err := newObserver(*lat, *lon, *when, *tz, *dst)
		if err != nil {
			fatal(err)
		}
		logger.Info("Sky view for %s", obs)
		path := outOr(*out, "sky_view"+outFormat.Ext())
		side := vg.Length(*size) * vg.Inch
		page := render.NewPage(outFormat, side, side, *dpi)
		chart.DrawSkyView(page.Canvas, cat, set, names, obs, pal, chart.SkyViewOptions{
			FOV:         *fov,
			Lines:       *lines,
			Asterisms:   *asterisms,
			Helpers:     *helpers,
			StarColors:  *starColors,
			Names:       *showNames,
			Parts:       *parts,
			StarNames:   *starNames,
			LimitingMag: *limitMag,
			StarSize:    *starSize,
		})
		writePage(page, path, logger)

	case equatorialMap:
		path := outOr(*out, "equatorial_map"+outFormat.Ext())
		opts := chart.EquatorialMapOptions{
			Lines:       *lines,
			Grid:        *grid,
			Asterisms:   *asterisms,
			Helpers:     *helpers,
			Names:       *showNames,
			Parts:       *parts,
			StarNames:   *starNames,
			LimitingMag: *limitMag,
			StarSize:    *starSize,
		}
		w, h := chart.EquatorialMapSize(opts)
		page := render.NewPage(outFormat, w, h, *dpi)
		chart.DrawEquatorialMap(page.Canvas, cat, set, names, pal, opts)
		writePage(page, path, logger)

	case polarMap != "":
		pole, err := chart.ParsePole(polarMap)
		if err != nil {
			fatal(err)
		}
		path := outOr(*out, "polar_map_"+pole.String()+outFormat.Ext())
		side := vg.Length(*size) * vg.Inch
		page := render.NewPage(outFormat, side, side, *dpi)
		chart.DrawPolarMap(page.Canvas, cat, set, names, pal, chart.PolarMapOptions{
			Pole:        pole,
			FOV:         *fov,
			Lines:       *lines,
			Grid:        *grid,
			Asterisms:   *asterisms,
			Helpers:     *helpers,
			Names:       *showNames,
			Parts:       *parts,
			StarNames:   *starNames,
			LimitingMag: *limitMag,
			StarSize:    *starSize,
		})
		writePage(page, path, logger)

	case visibilityLat != "":
		latRad, err := astro.ParseAngle(visibilityLat, 'N', 'S')
		if err != nil {
			fatal(err)
		}
		fmt.Print(ui.RenderVisibilityReport(cat, set, names, latRad*180/math.Pi))

	default:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fatal(fmt.Errorf("quiz needs a terminal, pick a render mode (see -help)"))
		}
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		p := tea.NewProgram(ui.NewQuizModel(cat, set, names, s), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatal(err)
		}
	}
}

// cardPage allocates a page of the template's size, bleed included.
func cardPage(format render.Format, tpl chart.Template, dpi int) *render.Page {
	w := vg.Length(tpl.Width+2*tpl.Bleed) * vg.Inch
	h := vg.Length(tpl.Height+2*tpl.Bleed) * vg.Inch
	return render.NewPage(format, w, h, dpi)
}

func writePage(page *render.Page, path string, logger *logging.Logger) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatal(err)
		}
	}
	if err := page.WriteFile(path); err != nil {
		fatal(err)
	}
	logger.Info("Wrote %s", path)
}

func outOr(out, fallback string) string {
	if out != "" {
		return out
	}
	return fallback
}

// newObserver builds an observer for the sky view from the position and
// time flags. An empty time means now.
func newObserver(lat, lon, when, tz string, dst bool) (*astro.Observer, error) {
	obs, err := astro.NewObserver(lat, lon)
	if err != nil {
		return nil, err
	}
	if when == "" {
		obs.AtTimeUTC(time.Now())
		return obs, nil
	}
	wall, err := time.Parse(timeLayout, when)
	if err != nil {
		return nil, fmt.Errorf("parse time: %w", err)
	}
	if err := obs.AtTime(wall, tz, dst); err != nil {
		return nil, err
	}
	return obs, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
