package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willsoar-boundare/working-time-around/internal/config"
	"github.com/willsoar-boundare/working-time-around/internal/domain"
	"github.com/willsoar-boundare/working-time-around/internal/notify"
	"github.com/willsoar-boundare/working-time-around/internal/repository"
	"github.com/willsoar-boundare/working-time-around/internal/service"
	"github.com/willsoar-boundare/working-time-around/internal/store"
	"github.com/willsoar-boundare/working-time-around/internal/teatest"
	"github.com/willsoar-boundare/working-time-around/internal/testutil"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

// fakeNotifier records every delivered message.
type fakeNotifier struct {
	sent *[]string
}

func (f fakeNotifier) Send(_ context.Context, text string) error {
	*f.sent = append(*f.sent, text)
	return nil
}

func newTestApp(t *testing.T) (*App, *[]string) {
	t.Helper()
	tracker := service.NewTracker(repository.NewSQLiteStateRepo(testutil.NewTestDB(t)))
	_, err := tracker.Load(context.Background())
	require.NoError(t, err)

	sent := &[]string{}
	app := &App{
		Tracker: tracker,
		Config:  &config.Config{DefaultBreakMinutes: 60, WebhookTimeoutSeconds: 10},
		NewNotifier: func(string) notify.Notifier {
			return fakeNotifier{sent: sent}
		},
		Online: func() bool { return true },
		Now:    func() time.Time { return testNow },
	}
	return app, sent
}

func newDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	return teatest.New(t, newAppModel(app), 80, 24)
}

func model(d *teatest.Driver) appModel {
	return d.Model.(appModel)
}

func todayRecordOf(app *App) *domain.DailyRecord {
	return app.Tracker.Current().Records[domain.KeyForDate(testNow)]
}

func TestModel_StartKey(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')

	rec := todayRecordOf(app)
	require.NotNil(t, rec)
	assert.True(t, rec.Open())
	assert.Equal(t, "Started 10:30", model(d).notice)
	assert.Contains(t, d.View(), "10:30")
}

func TestModel_DoubleStartShowsNotice(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('s')

	assert.Equal(t, "Already started", model(d).notice)
	assert.Len(t, todayRecordOf(app).Starts, 1)
}

func TestModel_StopWithoutStartShowsNotice(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('x')

	assert.Equal(t, "Not started yet", model(d).notice)
	assert.Nil(t, todayRecordOf(app))
}

func TestModel_StartStopFlow(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('x')

	rec := todayRecordOf(app)
	require.NotNil(t, rec)
	assert.False(t, rec.Open())
	assert.Equal(t, "Stopped 10:30", model(d).notice)
}

func TestModel_MemoFlow(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('m')
	require.True(t, model(d).memoEditing)

	d.Type("daily report")
	d.PressEnter()

	assert.False(t, model(d).memoEditing)
	assert.Equal(t, "Memo saved", model(d).notice)
	assert.Equal(t, []string{"daily report"}, todayRecordOf(app).Memos)
}

func TestModel_MemoEscCancels(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('m')
	d.Type("unsaved")
	d.PressEsc()

	assert.False(t, model(d).memoEditing)
	assert.Empty(t, todayRecordOf(app).Memos)
}

func TestModel_MemoWithoutStartRejected(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('m')
	d.Type("phantom")
	d.PressEnter()

	assert.Equal(t, "Start a session before writing a memo", model(d).notice)
	assert.Nil(t, todayRecordOf(app))
}

func TestModel_TabSwitchesToMonthAndBack(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressTab()
	m := model(d)
	assert.Equal(t, modeMonth, m.mode)
	assert.Equal(t, testNow.Day()-1, m.monthCursor, "cursor lands on today")
	assert.Contains(t, d.View(), "JUNE 2025")

	d.PressTab()
	assert.Equal(t, modeToday, model(d).mode)
}

func TestModel_MonthNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressTab()
	d.PressKey('[')
	assert.Contains(t, d.View(), "MAY 2025")
	assert.Equal(t, 0, model(d).monthCursor)

	d.PressKey(']')
	assert.Contains(t, d.View(), "JUNE 2025")
}

func TestModel_CursorStaysInMonthBounds(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressTab()
	d.PressKey('[')
	d.PressKey('k')
	assert.Equal(t, 0, model(d).monthCursor, "cursor does not go above the first day")

	for i := 0; i < 40; i++ {
		d.PressKey('j')
	}
	assert.Equal(t, 30, model(d).monthCursor, "cursor stops at May 31")
}

func TestModel_DeleteEntryFromMonth(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('x')
	d.PressTab()
	d.PressKey('d')
	require.NotNil(t, model(d).deleteConfirm, "delete asks for confirmation first")

	d.PressEnter()

	assert.Nil(t, model(d).deleteConfirm)
	assert.Equal(t, "Deleted entry of 2025-06-15", model(d).notice)
	assert.Nil(t, todayRecordOf(app))
}

func TestModel_DeleteConfirmEscKeepsEntry(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('x')
	d.PressTab()
	d.PressKey('d')
	d.PressEsc()

	assert.Nil(t, model(d).deleteConfirm)
	assert.NotNil(t, todayRecordOf(app))
}

func TestModel_DeleteEmptyDayShowsNotice(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressTab()
	d.PressKey('d')

	assert.Nil(t, model(d).deleteConfirm)
	assert.Equal(t, "Nothing recorded on 2025-06-15", model(d).notice)
}

func TestModel_TickAdvancesClock(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	later := testNow.Add(42 * time.Second)
	d.Send(tickMsg(later))

	assert.True(t, model(d).now.Equal(later))
	assert.Contains(t, d.View(), later.Format("15:04:05"))
}

func TestModel_NoticeExpiry(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	id := model(d).noticeID
	require.NotEmpty(t, id)

	// A stale timer for an older notice must not clear the current one.
	d.Send(noticeExpiredMsg{id: "stale"})
	assert.Equal(t, "Started 10:30", model(d).notice)

	d.Send(noticeExpiredMsg{id: id})
	assert.Empty(t, model(d).notice)
}

func TestModel_QuitKey(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestModel_WebhookNotifiedOnStart(t *testing.T) {
	app, sent := newTestApp(t)
	_, _, err := app.Tracker.Dispatch(context.Background(),
		store.UpdateSettings{Settings: domain.Settings{WebhookURL: "https://hooks.example.com/T1"}})
	require.NoError(t, err)
	d := newDriver(t, app)

	d.PressKey('s')

	require.Len(t, *sent, 1)
	assert.Equal(t, notify.StartMessage(testNow), (*sent)[0])
}

func TestModel_StopNotificationCarriesMemo(t *testing.T) {
	app, sent := newTestApp(t)
	_, _, err := app.Tracker.Dispatch(context.Background(),
		store.UpdateSettings{Settings: domain.Settings{WebhookURL: "https://hooks.example.com/T1"}})
	require.NoError(t, err)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('m')
	d.Type("wrapped up")
	d.PressEnter()
	d.PressKey('x')

	require.Len(t, *sent, 3)
	assert.Equal(t, notify.StopMessage(testNow, "wrapped up"), (*sent)[2])
}

func TestModel_OfflineSkipsNotification(t *testing.T) {
	app, sent := newTestApp(t)
	app.Online = func() bool { return false }
	_, _, err := app.Tracker.Dispatch(context.Background(),
		store.UpdateSettings{Settings: domain.Settings{WebhookURL: "https://hooks.example.com/T1"}})
	require.NoError(t, err)
	d := newDriver(t, app)

	d.PressKey('s')

	assert.Empty(t, *sent)
	assert.Equal(t, "Offline: notification skipped", model(d).notice)
}

func TestModel_NoWebhookMeansNoNotification(t *testing.T) {
	app, sent := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('s')
	d.PressKey('x')

	assert.Empty(t, *sent)
}

func TestModel_SettingsOpensAndEscCloses(t *testing.T) {
	app, _ := newTestApp(t)
	d := newDriver(t, app)

	d.PressKey('g')
	require.Equal(t, modeSettings, model(d).mode)
	assert.Contains(t, d.View(), "Webhook URL")

	d.PressEsc()
	assert.Equal(t, modeToday, model(d).mode)
	assert.Nil(t, model(d).settingsForm)
}
