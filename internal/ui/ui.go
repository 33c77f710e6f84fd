package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/zalando/go-keyring"

	"github.com/mohammadusama1497-dot/Age-Calculator/internal/agecalc"
	"github.com/mohammadusama1497-dot/Age-Calculator/internal/config"
)

//go:embed Icon.png
var appIconData []byte

// AgeCalculatorApp encapsulates the UI state, preferences, and the wiring
// to the calculation core.
type AgeCalculatorApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock    agecalc.Clock // Injected clock for testability
	Importer *agecalc.Importer

	SupportedLanguages []string

	settingsWindow fyne.Window

	// Form widgets, rebuilt on language change.
	nameEntry  *widget.Entry
	dobEntry   *DateEntry
	nameErrLbl *widget.Label
	dobErrLbl  *widget.Label
	resultLbl  *widget.Label
	calcBtn    *widget.Button
	resetBtn   *widget.Button
	exportBtn  *widget.Button

	// Last successful calculation, kept for the export action.
	lastName  string
	lastBirth time.Time
	hasResult bool
}

// NewAgeCalculatorApp constructs the application and wires dependencies.
func NewAgeCalculatorApp(a fyne.App, ctx context.Context, importer *agecalc.Importer) *AgeCalculatorApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &AgeCalculatorApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Importer:           importer,
		Clock:              agecalc.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run initializes localization, builds the main window and enters the UI loop.
func (app *AgeCalculatorApp) Run() {
	app.SetupI18n()
	app.buildMainWindow()
	app.Window.ShowAndRun()
}

// buildMainWindow creates the main form window.
func (app *AgeCalculatorApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window = w
	app.refreshMainContent()
}

// refreshMainContent (re)builds the form. Called at startup and after a
// language change so every label picks up the active locale.
func (app *AgeCalculatorApp) refreshMainContent() {
	app.nameEntry = widget.NewEntry()
	app.dobEntry = NewDateEntry()
	app.dobEntry.PlaceHolder = config.PlaceholderDate

	app.nameErrLbl = newErrorLabel()
	app.dobErrLbl = newErrorLabel()

	app.resultLbl = widget.NewLabel("")
	app.resultLbl.Wrapping = fyne.TextWrapWord
	app.resultLbl.TextStyle = fyne.TextStyle{Bold: true}

	app.calcBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.handleCalculate)
	app.calcBtn.Importance = widget.HighImportance

	app.resetBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.ContentClearIcon(), app.handleReset)
	app.resetBtn.Hide()

	app.exportBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), app.handleExport)
	app.exportBtn.Hide()

	importBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.DownloadIcon(), app.handleImport)
	settingsBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow)

	itemName := widget.NewFormItem(app.GetMsg(config.TKeyLblName), container.NewVBox(app.nameEntry, app.nameErrLbl))
	itemDOB := widget.NewFormItem(app.GetMsg(config.TKeyLblDOB), container.NewVBox(app.dobEntry, app.dobErrLbl))
	itemDOB.HintText = app.GetMsg(config.TKeyHelpDOB)

	form := widget.NewForm(itemName, itemDOB)

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, app.resetBtn, app.calcBtn),
		app.resultLbl,
		app.exportBtn,
		widget.NewSeparator(),
		container.NewGridWithColumns(config.LayoutColumnsDouble, importBtn, settingsBtn),
	))

	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(content)
}

// newErrorLabel builds a hidden danger-styled label for per-field errors.
func newErrorLabel() *widget.Label {
	lbl := widget.NewLabel("")
	lbl.Importance = widget.DangerImportance
	lbl.Wrapping = fyne.TextWrapWord
	lbl.Hide()
	return lbl
}

// handleCalculate validates the form and, when valid, computes and shows the age.
func (app *AgeCalculatorApp) handleCalculate() {
	now := app.Clock.Now()
	name := app.nameEntry.Text

	var dob time.Time
	parseFailed := false
	if raw := strings.TrimSpace(app.dobEntry.Text); raw != "" {
		parsed, err := agecalc.ParseDate(raw)
		if err != nil {
			parseFailed = true
		} else {
			dob = parsed
		}
	}

	app.clearFieldErrors()
	app.hasResult = false
	app.exportBtn.Hide()

	errs := agecalc.Validate(name, dob, now)
	if parseFailed {
		// An unparseable (but present) date supersedes the missing-date error.
		app.showFieldError(agecalc.FieldDOB, app.GetMsg(config.TKeyErrDateFormat))
	}
	for _, fe := range errs {
		if parseFailed && fe.Field == agecalc.FieldDOB {
			continue
		}
		app.showFieldError(fe.Field, app.reasonMsg(fe.Reason))
	}

	if parseFailed || len(errs) > 0 {
		slog.Info(config.MsgCalcRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, len(errs),
		)
		app.resultLbl.SetText("")
		app.resetBtn.Show()
		return
	}

	age := agecalc.AgeBetween(dob, now)
	slog.Info(config.MsgCalcDone,
		config.LogKeyComponent, config.CompUI,
		slog.Group(config.LogKeyResult,
			slog.Int(config.LogKeyYears, age.Years),
			slog.Int(config.LogKeyMonths, age.Months),
			slog.Int(config.LogKeyDays, age.Days),
		),
	)

	app.lastName = strings.TrimSpace(name)
	app.lastBirth = dob
	text := app.formatResult(app.lastName, age)

	delay := app.Preferences.IntWithFallback(config.PrefResultDelayMS, config.DefaultResultDelayMS)
	app.showResult(text, delay)
}

// showResult displays the result text, optionally after a cosmetic delay.
func (app *AgeCalculatorApp) showResult(text string, delayMS int) {
	reveal := func() {
		app.calcBtn.Enable()
		app.resultLbl.SetText(text)
		app.resetBtn.Show()
		app.hasResult = true
		app.exportBtn.Show()
	}

	if delayMS <= config.DisabledDelay {
		reveal()
		return
	}

	slog.Debug(config.MsgDelayScheduled,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDelayMS, delayMS,
	)
	app.calcBtn.Disable()
	app.resultLbl.SetText(app.GetMsg(config.TKeyLblWorking))

	time.AfterFunc(time.Duration(delayMS)*time.Millisecond, func() {
		fyne.Do(reveal)
	})
}

// handleReset clears the form, the errors and the result.
func (app *AgeCalculatorApp) handleReset() {
	app.nameEntry.SetText("")
	app.dobEntry.SetText("")
	app.clearFieldErrors()
	app.resultLbl.SetText("")
	app.resetBtn.Hide()
	app.exportBtn.Hide()
	app.hasResult = false
	app.calcBtn.Enable()

	slog.Debug(config.MsgFormReset, config.LogKeyComponent, config.CompUI)
}

// handleImport prefills the form from the configured vCard source.
func (app *AgeCalculatorApp) handleImport() {
	cfg := app.loadImportConfig()

	go func() {
		contact, err := app.Importer.Load(app.Ctx, cfg)
		fyne.Do(func() {
			if err != nil {
				slog.Error(config.MsgImportFailed,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, err,
				)
				app.App.SendNotification(fyne.NewNotification(
					config.TitleImportError, app.GetMsg(config.TKeyNotifImportErr)))
				return
			}

			app.nameEntry.SetText(contact.Name)
			app.dobEntry.SetText(contact.DateOfBirth.Format(config.DateFormatDisplay))
			app.App.SendNotification(fyne.NewNotification(
				config.AppName, app.GetMsg(config.TKeyNotifImportOK)))
		})
	}()
}

// handleExport saves a next-birthday reminder event as an .ics file.
func (app *AgeCalculatorApp) handleExport() {
	if !app.hasResult {
		return
	}

	data, err := agecalc.BuildBirthdayEvent(app.lastName, app.lastBirth, app.Clock.Now(), app.buildSummaryFormatter())
	if err != nil {
		slog.Error(config.MsgExportFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		app.App.SendNotification(fyne.NewNotification(
			config.TitleExportError, app.GetMsg(config.TKeyNotifExportErr)))
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer func() { _ = writer.Close() }()

		if _, err := writer.Write(data); err != nil {
			slog.Error(config.MsgExportFailed,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err,
			)
			app.App.SendNotification(fyne.NewNotification(
				config.TitleExportError, app.GetMsg(config.TKeyNotifExportErr)))
			return
		}

		slog.Info(config.MsgExportDone,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyName, app.lastName,
		)
		app.App.SendNotification(fyne.NewNotification(
			config.AppName, app.GetMsg(config.TKeyNotifExportOK)))
	}, app.Window)
	d.SetFileName(config.ICalCalName + config.ExtICS)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// showFieldError renders a message next to the given field.
func (app *AgeCalculatorApp) showFieldError(field agecalc.Field, msg string) {
	lbl := app.nameErrLbl
	if field == agecalc.FieldDOB {
		lbl = app.dobErrLbl
	}
	lbl.SetText(msg)
	lbl.Show()
}

// clearFieldErrors hides both per-field error labels.
func (app *AgeCalculatorApp) clearFieldErrors() {
	for _, lbl := range []*widget.Label{app.nameErrLbl, app.dobErrLbl} {
		lbl.SetText("")
		lbl.Hide()
	}
}

// reasonMsg maps a validation reason code to its localized message.
func (app *AgeCalculatorApp) reasonMsg(reason agecalc.Reason) string {
	switch reason {
	case agecalc.ReasonEmptyName:
		return app.GetMsg(config.TKeyErrNameEmpty)
	case agecalc.ReasonNameTooShort:
		return app.GetMsg(config.TKeyErrNameShort)
	case agecalc.ReasonMissingDate:
		return app.GetMsg(config.TKeyErrDateMiss)
	case agecalc.ReasonFutureDate:
		return app.GetMsg(config.TKeyErrDateFuture)
	case agecalc.ReasonDateTooOld:
		return app.GetMsg(config.TKeyErrDateOld)
	default:
		return string(reason)
	}
}

// formatResult localizes the greeting line for a computed age.
func (app *AgeCalculatorApp) formatResult(name string, age agecalc.Age) string {
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID: config.TKeyResultAge,
			TemplateData: map[string]interface{}{
				"Name":   name,
				"Years":  age.Years,
				"Months": age.Months,
				"Days":   age.Days,
			},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackResult, name, age.Years, age.Months, age.Days)
}

// buildSummaryFormatter returns a closure that localizes the exported event summary.
func (app *AgeCalculatorApp) buildSummaryFormatter() func(name string, age int) string {
	return func(name string, age int) string {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyEvtSummaryAge,
				TemplateData: map[string]interface{}{"Name": name, "Age": age},
			})
			if err == nil && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
}

// loadImportConfig assembles the importer configuration from preferences and Keyring.
func (app *AgeCalculatorApp) loadImportConfig() agecalc.ImportConfig {
	cfg := agecalc.ImportConfig{
		Mode:      app.Preferences.StringWithFallback(config.PrefSourceMode, config.SourceModeLocal),
		LocalPath: app.Preferences.String(config.PrefLocalPath),
		WebURL:    app.Preferences.String(config.PrefCardDAVURL),
		WebUser:   app.Preferences.String(config.PrefUsername),
	}

	if cfg.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, cfg.WebUser); err == nil {
			cfg.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, cfg.WebUser,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI,
			)
		}
	}

	return cfg
}
