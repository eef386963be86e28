package domain

import "time"

// Record is one finalized row of the consolidated report: a whole projeto
// entry, or one item of a batch with its rationed share.
type Record struct {
	EntryID   string
	Sector    Sector
	Date      time.Time
	Operator  string
	Equipment string
	SKU       string
	OrderRef  string
	Type      string
	Quantity  *float64
	Hours     float64
	PaintKg   *float64
	Status    RecordStatus
}

// SKUSummary aggregates the records of one SKU.
type SKUSummary struct {
	SKU              string
	DesignHours      float64
	DesignCount      int
	HoursByType      map[string]float64
	CutMeanByEquip   map[string]float64
	CutMeanTotal     float64
	WeldMeanHours    float64
	PaintMeanHours   float64
	PaintMeanKg      float64
	TopWeldOperators []OperatorCount
	History          []Record
}

// OperatorCount is a record count for one operator.
type OperatorCount struct {
	Operator string
	Count    int
}
