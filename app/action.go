package app

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/belfry-dev/belfry/bell"
	"github.com/belfry-dev/belfry/internal/config"
	"github.com/belfry-dev/belfry/internal/static"
	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/internal/ui"
	"github.com/belfry-dev/belfry/reconcile"
	"github.com/belfry-dev/belfry/report"
	"github.com/belfry-dev/belfry/schedule"
	"github.com/belfry-dev/belfry/store"
	"github.com/belfry-dev/belfry/trigger"
)

const envNoColor = "NO_COLOR"

var cfg *config.Config

// beforeAction resolves paths, loads the config file, seeds the
// embedded sounds, and sets up logging before any command runs.
func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogging()

	if err := static.CopyFilesToDataDir(); err != nil {
		return err
	}

	var err error

	cfg, err = config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	if _, ok := os.LookupEnv(envNoColor); ok || ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

// session wires the store and reconciler and hydrates the timetable.
// The caller owns the returned client and must close it.
func session(link string) (*store.Client, *reconcile.Reconciler, *schedule.Schedule, reconcile.Source, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, nil, reconcile.SourceDefault, err
	}

	rec := reconcile.New(db, cfg.Share.BaseURL)

	sched, src := rec.Hydrate(link)

	slog.Info("timetable hydrated",
		slog.String("source", src.String()),
		slog.Int("bells", sched.Len()),
	)

	return db, rec, sched, src, nil
}

// defaultAction runs the fullscreen clock.
func defaultAction(ctx *cli.Context) error {
	link := ctx.String("link")
	if link == "" && ctx.Args().Len() > 0 {
		link = ctx.Args().First()
	}

	db, rec, sched, _, err := session(link)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	// persist the hydrated state before interaction begins; a link that
	// seeded the store is already marked synced so this does not
	// rebuild it
	rec.Push(sched)

	ringer := trigger.NewRinger(cfg, db)

	return bell.Run(cfg, sched, rec, ringer)
}

// listAction prints the timetable, sorted by time of day.
func listAction(_ *cli.Context) error {
	db, _, sched, src, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	data := [][]string{{"#", "TIME"}}

	for i, e := range sched.Sorted() {
		data = append(data, []string{strconv.Itoa(i + 1), e.Time.String()})
	}

	pterm.Printfln("%s (%s)", ui.Highlight(sched.Label), src)

	ui.PrintTable(data, os.Stdout)

	if next, ok := trigger.NextBell(sched.Sorted(), time.Now()); ok {
		pterm.Printfln("Next bell: %s", ui.Yellow(next.Time.String()))
	}

	return nil
}

// addAction appends one or more bells to the timetable.
func addAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("expected at least one HH:MM time")
	}

	db, rec, sched, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	for _, arg := range ctx.Args().Slice() {
		id := sched.Add("")

		if err := sched.SetTime(id, arg); err != nil {
			sched.Remove(id)
			return err
		}
	}

	pushAndReport(rec, sched)

	report.Success(fmt.Sprintf("added %d bell(s)", ctx.Args().Len()))

	return nil
}

// removeAction deletes a bell by time or by its position in the sorted
// view.
func removeAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("expected a HH:MM time or a list position")
	}

	db, rec, sched, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	arg := ctx.Args().First()
	sorted := sched.Sorted()

	var target string

	if t, err := timeutil.Parse(arg); err == nil {
		for _, e := range sorted {
			if e.Time == t {
				target = e.ID
				break
			}
		}
	} else if pos, err := strconv.Atoi(arg); err == nil {
		if pos < 1 || pos > len(sorted) {
			return fmt.Errorf("position %d is out of range", pos)
		}

		target = sorted[pos-1].ID
	} else {
		return fmt.Errorf("%q is neither a HH:MM time nor a list position", arg)
	}

	if target == "" {
		return fmt.Errorf("no bell at %s", arg)
	}

	sched.Remove(target)

	pushAndReport(rec, sched)

	report.Success("bell removed")

	return nil
}

// labelAction renames the timetable.
func labelAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return fmt.Errorf("expected a timetable name")
	}

	db, rec, sched, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	sched.SetLabel(strings.Join(ctx.Args().Slice(), " "))

	pushAndReport(rec, sched)

	return nil
}

// importAction replaces the timetable with the contents of a JSON file.
func importAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("expected a file to import")
	}

	fileName := ctx.Args().First()

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	imported, err := schedule.ImportDocument(raw)
	if err != nil {
		return err
	}

	db, rec, prior, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if prior.Len() > 0 && !ctx.Bool("yes") {
		ok, err := confirm(
			fmt.Sprintf("Replace the current timetable (%d bells) with %s?",
				prior.Len(), fileName),
		)
		if err != nil {
			return err
		}

		if !ok {
			report.Status("import cancelled")
			return nil
		}
	}

	pushAndReport(rec, imported)

	report.Success(fileName + " を読み込みました")

	return nil
}

// exportAction writes the timetable to a JSON file, sorted by time.
func exportAction(ctx *cli.Context) error {
	db, _, sched, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if sched.Len() == 0 {
		report.Status("書き出す時間がありません")
		return nil
	}

	fileName := ctx.Args().First()
	if fileName == "" {
		fileName = schedule.ExportFileName(sched.Label)
	}

	b, err := schedule.ExportDocument(sched).MarshalIndent()
	if err != nil {
		return err
	}

	if err := os.WriteFile(fileName, b, 0o644); err != nil {
		return err
	}

	report.Success("JSONを書き出しました: " + fileName)

	return nil
}

// shareAction prints the share link for the current timetable.
func shareAction(ctx *cli.Context) error {
	db, rec, sched, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	link := rec.Link(sched)

	fmt.Fprintln(config.Stdout, link)

	if ctx.Bool("copy") {
		if err := clipboard.WriteAll(link); err != nil {
			report.Error(fmt.Errorf("リンクをコピーできませんでした: %w", err))
			return nil
		}

		report.Success("共有リンクをコピーしました")
	}

	return nil
}

// resetAction restores the built-in timetable.
func resetAction(ctx *cli.Context) error {
	db, rec, _, _, err := session("")
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if !ctx.Bool("yes") {
		ok, err := confirm("Restore the built-in timetable? This discards every configured bell.")
		if err != nil {
			return err
		}

		if !ok {
			report.Status("reset cancelled")
			return nil
		}
	}

	pushAndReport(rec, schedule.Default())

	report.Success("初期の時間割に戻しました")

	return nil
}

// historyAction lists recently fired chimes.
func historyAction(ctx *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	records, err := db.RecentChimes(ctx.Int("limit"))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		report.Status("no chimes recorded yet")
		return nil
	}

	data := [][]string{{"RANG AT", "BELL", "TIMETABLE"}}

	for _, rec := range records {
		data = append(data, []string{
			rec.RangAt.Format("Jan 02, 2006 15:04:05"),
			rec.Bell.String(),
			rec.Label,
		})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

// ringAction plays the chime once.
func ringAction(_ *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	trigger.NewRinger(cfg, db).Test()

	return nil
}

// pushAndReport persists a mutation and prints the rebuilt share link
// when it changed.
func pushAndReport(rec *reconcile.Reconciler, sched *schedule.Schedule) {
	if link, changed := rec.Push(sched); changed {
		pterm.Printfln("share link: %s", ui.Cyan(link))
	}
}

func confirm(title string) (bool, error) {
	var ok bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&ok),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return ok, nil
}
