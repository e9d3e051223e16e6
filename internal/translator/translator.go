// Package translator converts raw upstream JSON documents into the
// client-facing model. It is pure: no I/O, no retry, no state.
//
// Extraction is best-effort per field, mirroring the upstream's loose
// schema: a missing or mistyped field yields the zero value (empty string,
// 0, false) instead of an error. Only a body that does not parse as JSON
// at all is reported as a translation failure.
package translator

import (
	"encoding/json"
	"strconv"

	"github.com/lavadevv/timeable-api/internal/models"
	"github.com/lavadevv/timeable-api/pkg/errors"
)

// Terms extracts the term list from a term-listing response document.
func Terms(raw []byte) ([]models.Term, error) {
	root, err := parse(raw)
	if err != nil {
		return nil, errors.TranslationError("terms", err)
	}

	items := arrayAt(root, "data", "ds_hoc_ky")
	terms := make([]models.Term, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		terms = append(terms, models.Term{
			Code:      stringField(obj, "hoc_ky"),
			Name:      stringField(obj, "ten_hoc_ky"),
			StartDate: stringField(obj, "ngay_bat_dau_hk"),
			EndDate:   stringField(obj, "ngay_ket_thuc_hk"),
		})
	}
	return terms, nil
}

// Schedule extracts the lesson-period table and the week list from a
// schedule response document. Both collections are always returned, empty
// when the document carries none.
func Schedule(raw []byte) (*models.Schedule, error) {
	root, err := parse(raw)
	if err != nil {
		return nil, errors.TranslationError("schedule", err)
	}

	return &models.Schedule{
		LessonTimeList: lessonPeriods(root),
		TimeableList:   weeks(root),
	}, nil
}

func lessonPeriods(root any) []models.LessonPeriod {
	items := arrayAt(root, "data", "ds_tiet_trong_ngay")
	periods := make([]models.LessonPeriod, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		periods = append(periods, models.LessonPeriod{
			Period:    intField(obj, "tiet"),
			StartTime: stringField(obj, "gio_bat_dau"),
			EndTime:   stringField(obj, "gio_ket_thuc"),
			Duration:  stringField(obj, "so_phut"),
		})
	}
	return periods
}

func weeks(root any) []models.WeekInfo {
	items := arrayAt(root, "data", "ds_tuan_tkb")
	weekList := make([]models.WeekInfo, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		weekList = append(weekList, models.WeekInfo{
			WeekIndex: intField(obj, "tuan_hoc_ky"),
			Label:     stringField(obj, "thong_tin_tuan"),
			StartDate: stringField(obj, "ngay_bat_dau"),
			EndDate:   stringField(obj, "ngay_ket_thuc"),
			Sessions:  sessions(obj["ds_thoi_khoa_bieu"]),
		})
	}
	return weekList
}

func sessions(node any) []models.ScheduleEntry {
	items := asArray(node)
	entries := make([]models.ScheduleEntry, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		entries = append(entries, models.ScheduleEntry{
			Weekday:           intField(obj, "thu_kieu_so"),
			StartPeriod:       intField(obj, "tiet_bat_dau"),
			PeriodCount:       intField(obj, "so_tiet"),
			CourseCode:        stringField(obj, "ma_mon"),
			CourseName:        stringField(obj, "ten_mon"),
			Credit:            stringField(obj, "so_tin_chi"),
			GroupCode:         stringField(obj, "ma_nhom"),
			PracticeGroupCode: stringField(obj, "ma_to_th"),
			CombinationCode:   stringField(obj, "ma_to_hop"),
			LecturerCode:      stringField(obj, "ma_giang_vien"),
			LecturerName:      stringField(obj, "ten_giang_vien"),
			ClassCode:         stringField(obj, "ma_lop"),
			ClassName:         stringField(obj, "ten_lop"),
			RoomCode:          stringField(obj, "ma_phong"),
			IsMakeup:          boolField(obj, "is_day_bu"),
			LearnDate:         stringField(obj, "ngay_hoc"),
		})
	}
	return entries
}

// parse decodes the document or fails; this is the only hard failure path.
func parse(raw []byte) (any, error) {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	return root, nil
}

// arrayAt walks the given key path through nested objects and returns the
// array found at the end, or nil when any step is missing or mistyped.
func arrayAt(root any, keys ...string) []any {
	node := root
	for _, key := range keys {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = obj[key]
	}
	return asArray(node)
}

func asObject(node any) map[string]any {
	obj, _ := node.(map[string]any)
	return obj
}

func asArray(node any) []any {
	arr, _ := node.([]any)
	return arr
}

// stringField returns the field as text, "" when absent. Numbers are
// rendered without an exponent so numeric codes survive as-is.
func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// intField returns the field as an int, 0 when absent or non-numeric.
func intField(obj map[string]any, key string) int {
	switch v := obj[key].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// boolField returns the field as a bool, false when absent or mistyped.
func boolField(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}
