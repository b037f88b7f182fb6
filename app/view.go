package app

import (
	"time"

	"github.com/lixenwraith/weatherpets/audio"
	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/pet"
	"github.com/lixenwraith/weatherpets/weather"
)

// PetView is a pet as drawn this frame
type PetView struct {
	pet.Pet
	// FloatOffset is the vertical bob in percentage-of-viewport units, applied at draw time only
	FloatOffset float64 `json:"float_offset"`
	Moving      bool    `json:"moving"`
	Selected    bool    `json:"selected"`
}

// RadioView is the radio state as drawn this frame
type RadioView struct {
	Station   string       `json:"station"`
	Playing   bool         `json:"playing"`
	Volume    int          `json:"volume"`
	Muted     bool         `json:"muted"`
	KnobAngle float64      `json:"knob_angle"`
	Notes     []audio.Note `json:"notes"`
}

// View is an immutable read-only model of one frame, safe to share across goroutines
type View struct {
	Time        time.Time  `json:"time"`
	FeedVersion uint64     `json:"feed_version"`
	Pets        []PetView  `json:"pets"`
	Selected    string     `json:"selected,omitempty"`
	Tab         Tab        `json:"tab"`
	Units       string     `json:"units"`
	ShowFlags   bool       `json:"show_flags"`
	Globe       GlobeView  `json:"globe"`
	Antenna     float64    `json:"antenna_angle"`
	Radio       RadioView  `json:"radio"`
	PanelHeight int        `json:"panel_height"`
	Stats       *pet.Stats `json:"stats,omitempty"`
}

// GlobeView is the globe state as drawn this frame
type GlobeView struct {
	Rotation   [2]float64 `json:"rotation"`
	AutoRotate bool       `json:"auto_rotate"`
	Rotating   bool       `json:"rotating"`
	Geo        string     `json:"geo"`
}

// Snapshot returns the most recently published frame model. Safe from any goroutine
func (a *App) Snapshot() *View {
	return a.view.Load()
}

func (a *App) publish(now time.Time) {
	v := &View{
		Time:        now,
		FeedVersion: a.lastVersion,
		Pets:        make([]PetView, 0, len(a.pets)),
		Tab:         a.tab,
		Units:       a.settings.Units.String(),
		ShowFlags:   a.settings.ShowFlags,
		Globe: GlobeView{
			Rotation:   a.globe.Rotation(),
			AutoRotate: a.globe.AutoRotate(),
			Rotating:   a.globe.Rotating(),
			Geo:        a.GeoState().String(),
		},
		Antenna: a.antenna.Angle(),
		Radio: RadioView{
			Station:   a.radio.Current(),
			Playing:   a.radio.Playing(),
			Volume:    a.radio.Volume(),
			Muted:     a.radio.Muted(),
			KnobAngle: a.radio.KnobAngle(),
			Notes:     a.radio.Notes(),
		},
		PanelHeight: a.panel.height,
	}
	selected, _ := a.selection.ID()
	v.Selected = selected
	for _, p := range a.pets {
		pv := PetView{Pet: p, Selected: p.ID == selected}
		if w, ok := a.wanderers[p.ID]; ok {
			pv.FloatOffset = w.FloatOffset()
			_, pv.Moving = w.Target()
		}
		v.Pets = append(v.Pets, pv)
	}
	if stats, ok := pet.Summarize(a.pets); ok {
		v.Stats = &stats
	}
	a.view.Store(v)
}

// Outlook is the synthesized forecast and history shown for one pet
type Outlook struct {
	Forecast []weather.ForecastPoint
	Week     []weather.HistoryPoint
	YearAgo  weather.HistoryPoint
}

// outlookCache keeps outlooks stable between feed ticks so the charts do not
// reshuffle every frame
type outlookCache struct {
	version uint64
	byID    map[string]Outlook
}

// Outlook returns the forecast and history for pet id, regenerated once per feed version
func (a *App) Outlook(id string) (Outlook, bool) {
	p := pet.Find(a.pets, id)
	if p == nil {
		return Outlook{}, false
	}
	if a.outlook.byID == nil || a.outlook.version != a.lastVersion {
		a.outlook = outlookCache{version: a.lastVersion, byID: make(map[string]Outlook)}
	}
	if o, ok := a.outlook.byID[id]; ok {
		return o, true
	}
	now := a.sched.Now()
	o := Outlook{
		Forecast: weather.Forecast(p.Weather, a.rng),
		Week:     weather.HistorySeries(p.Weather, constant.OutlookHistoryDays, now, a.rng),
		YearAgo:  weather.History(p.Weather, constant.OutlookYearAgoDays, now, a.rng),
	}
	a.outlook.byID[id] = o
	return o, true
}
