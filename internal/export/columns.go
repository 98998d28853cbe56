// Package export writes the NCTH weapon table to its output encodings.
//
// Every sink and publisher shares one column model so the header text,
// column order and cell values stay identical across CSV, XLSX, SQLite,
// Google Sheets and BigQuery.
package export

import (
	"strconv"
	"strings"

	"ncth_weapons/internal/app"
)

// Kind is the storage type of a column
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
)

// Column describes one output column.
//
// Value returns int64, float32, string, bool or nil. Nil marks an absent
// optional and is written as an empty cell.
type Column struct {
	Header   string
	Name     string
	Kind     Kind
	Optional bool
	Value    func(row app.OutputRow) any
}

// Columns is the output column model in table order
var Columns = []Column{
	{Header: "Index", Name: "idx", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Index) }},
	{Header: "Name", Name: "name", Kind: KindString, Value: func(r app.OutputRow) any { return r.Name }},
	{Header: "Long Name", Name: "long_name", Kind: KindString, Value: func(r app.OutputRow) any { return r.LongName }},
	{Header: "Type", Name: "type", Kind: KindString, Value: func(r app.OutputRow) any { return r.Category.String() }},
	{Header: "Ammo", Name: "ammo", Kind: KindString, Value: func(r app.OutputRow) any { return r.Caliber }},
	{Header: "Mag", Name: "mag", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.MagSize) }},
	{Header: "Rng", Name: "rng", Kind: KindFloat, Value: func(r app.OutputRow) any { return r.Range }},
	{Header: "Acc", Name: "acc", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Accuracy) }},
	{Header: "Aim", Name: "aim", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.AimLevels) }},
	{Header: "Dmg", Name: "dmg", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Damage) }},
	{Header: "Handling", Name: "handling", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Handling) }},
	{Header: "rdy", Name: "rdy", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.APsToReady) }},
	{Header: "att", Name: "att", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.APsToAttack) }},
	{Header: "bur", Name: "bur", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.APsToBurst) }},
	{Header: "aut", Name: "aut", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.APsToAuto) }},
	{Header: "lod", Name: "lod", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.APsToReload) }},
	{Header: "rrd", Name: "rrd", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.APsToReloadManually) }},
	{Header: "Hands", Name: "hands", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Hands) }},
	{Header: "Loud", Name: "loud", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Loudness) }},
	{Header: "Rely", Name: "rely", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Reliability) }},
	{Header: "Rep", Name: "rep", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.RepairEase) }},
	{Header: "Burst shots", Name: "burst_shots", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.ShotsPerBurst) }},
	{Header: "Autofire per 5 AP", Name: "autofire_per_5_ap", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.AutofirePerFiveAP) }},
	{Header: "Recoil X", Name: "recoil_x", Kind: KindFloat, Optional: true, Value: func(r app.OutputRow) any { return optionalFloat(r.RecoilX) }},
	{Header: "Recoil Y", Name: "recoil_y", Kind: KindFloat, Optional: true, Value: func(r app.OutputRow) any { return optionalFloat(r.RecoilY) }},
	{Header: "Recoil Total", Name: "recoil_total", Kind: KindFloat, Optional: true, Value: func(r app.OutputRow) any { return optionalFloat(r.RecoilTotal) }},
	{Header: "Weight", Name: "weight", Kind: KindFloat, Value: func(r app.OutputRow) any { return r.Weight }},
	{Header: "Coolness", Name: "coolness", Kind: KindInt, Value: func(r app.OutputRow) any { return int64(r.Coolness) }},
	{Header: "Buyable", Name: "buyable", Kind: KindBool, Value: func(r app.OutputRow) any { return r.Buyable }},
	{Header: "Price", Name: "price", Kind: KindInt, Optional: true, Value: func(r app.OutputRow) any { return optionalInt(r.Price) }},
}

func optionalInt(v *uint32) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func optionalFloat(v *float32) any {
	if v == nil {
		return nil
	}
	return *v
}

// Header returns the header text of every column in order
func Header() []string {
	header := make([]string, len(Columns))
	for i, col := range Columns {
		header[i] = col.Header
	}
	return header
}

// Record renders one row as text cells in column order
func Record(row app.OutputRow) []string {
	record := make([]string, len(Columns))
	for i, col := range Columns {
		record[i] = FormatValue(col.Value(row))
	}
	return record
}

// NativeValues returns one row's cell values for typed backends. Floats are
// widened to the float64 nearest their shortest float32 representation so
// 0.9 stays 0.9 rather than 0.8999999761581421.
func NativeValues(row app.OutputRow) []any {
	values := make([]any, len(Columns))
	for i, col := range Columns {
		values[i] = Widen(col.Value(row))
	}
	return values
}

// Widen converts float32 cell values to float64, leaving other values as is
func Widen(v any) any {
	f, ok := v.(float32)
	if !ok {
		return v
	}
	widened, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return widened
}

// FormatValue renders a cell value as text. Floats use the shortest
// representation at float32 precision and always carry a decimal point.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return FormatFloat(value)
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// FormatFloat renders 1 as "1.0" and 2.5 as "2.5"
func FormatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
