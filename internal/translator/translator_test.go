package translator_test

import (
	"encoding/json"
	"testing"

	"github.com/lavadevv/timeable-api/internal/models"
	"github.com/lavadevv/timeable-api/internal/translator"
	"github.com/lavadevv/timeable-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms_SingleTerm(t *testing.T) {
	raw := []byte(`{
		"data": {
			"ds_hoc_ky": [
				{
					"hoc_ky": "20231",
					"ten_hoc_ky": "HK1 2023-2024",
					"ngay_bat_dau_hk": "2023-08-01",
					"ngay_ket_thuc_hk": "2023-12-31"
				}
			]
		}
	}`)

	terms, err := translator.Terms(raw)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, models.Term{
		Code:      "20231",
		Name:      "HK1 2023-2024",
		StartDate: "2023-08-01",
		EndDate:   "2023-12-31",
	}, terms[0])
}

func TestTerms_NumericCodeRenderedAsText(t *testing.T) {
	raw := []byte(`{"data":{"ds_hoc_ky":[{"hoc_ky":20232,"ten_hoc_ky":"HK2"}]}}`)

	terms, err := translator.Terms(raw)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "20232", terms[0].Code)
	// absent fields default to empty strings
	assert.Equal(t, "", terms[0].StartDate)
	assert.Equal(t, "", terms[0].EndDate)
}

func TestTerms_OrderPreserved(t *testing.T) {
	raw := []byte(`{"data":{"ds_hoc_ky":[
		{"hoc_ky":"20232"},
		{"hoc_ky":"20231"},
		{"hoc_ky":"20223"}
	]}}`)

	terms, err := translator.Terms(raw)
	require.NoError(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "20232", terms[0].Code)
	assert.Equal(t, "20231", terms[1].Code)
	assert.Equal(t, "20223", terms[2].Code)
}

func TestTerms_MissingArrayYieldsEmptyList(t *testing.T) {
	terms, err := translator.Terms([]byte(`{"data":{}}`))
	require.NoError(t, err)
	assert.Empty(t, terms)

	terms, err = translator.Terms([]byte(`{"something":"else"}`))
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestTerms_MalformedBodyIsTranslationFailure(t *testing.T) {
	_, err := translator.Terms([]byte(`<html>not json</html>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTranslation))
	assert.False(t, errors.Is(err, errors.ErrUpstreamUnavailable))
}

func TestSchedule_SingleWeekSingleSession(t *testing.T) {
	raw := []byte(`{
		"data": {
			"ds_tiet_trong_ngay": [
				{"tiet": 1, "gio_bat_dau": "07:00", "gio_ket_thuc": "07:50", "so_phut": 50}
			],
			"ds_tuan_tkb": [
				{
					"tuan_hoc_ky": 1,
					"thong_tin_tuan": "Tuần 1",
					"ngay_bat_dau": "2023-08-01",
					"ngay_ket_thuc": "2023-08-07",
					"ds_thoi_khoa_bieu": [
						{"thu_kieu_so": 2, "tiet_bat_dau": 1, "so_tiet": 3, "ma_mon": "CS101"}
					]
				}
			]
		}
	}`)

	schedule, err := translator.Schedule(raw)
	require.NoError(t, err)

	require.Len(t, schedule.LessonTimeList, 1)
	assert.Equal(t, models.LessonPeriod{
		Period:    1,
		StartTime: "07:00",
		EndTime:   "07:50",
		Duration:  "50",
	}, schedule.LessonTimeList[0])

	require.Len(t, schedule.TimeableList, 1)
	week := schedule.TimeableList[0]
	assert.Equal(t, 1, week.WeekIndex)
	assert.Equal(t, "Tuần 1", week.Label)
	assert.Equal(t, "2023-08-01", week.StartDate)
	assert.Equal(t, "2023-08-07", week.EndDate)

	require.Len(t, week.Sessions, 1)
	session := week.Sessions[0]
	assert.Equal(t, 2, session.Weekday)
	assert.Equal(t, 1, session.StartPeriod)
	assert.Equal(t, 3, session.PeriodCount)
	assert.Equal(t, "CS101", session.CourseCode)
	// fields absent from the document keep their zero values
	assert.Equal(t, "", session.LecturerName)
	assert.False(t, session.IsMakeup)
}

func TestSchedule_FullSessionFields(t *testing.T) {
	raw := []byte(`{"data":{"ds_tuan_tkb":[{"tuan_hoc_ky":3,"ds_thoi_khoa_bieu":[{
		"thu_kieu_so": 4,
		"tiet_bat_dau": 6,
		"so_tiet": 2,
		"ma_mon": "PH103",
		"ten_mon": "Vật lý đại cương",
		"so_tin_chi": "3",
		"ma_nhom": "01",
		"ma_to_th": "02",
		"ma_to_hop": "TH01",
		"ma_giang_vien": "GV042",
		"ten_giang_vien": "Nguyễn Văn A",
		"ma_lop": "K67CNTT",
		"ten_lop": "K67 Công nghệ thông tin",
		"ma_phong": "ND-305",
		"is_day_bu": true,
		"ngay_hoc": "2023-08-17"
	}]}]}}`)

	schedule, err := translator.Schedule(raw)
	require.NoError(t, err)
	require.Len(t, schedule.TimeableList, 1)
	require.Len(t, schedule.TimeableList[0].Sessions, 1)

	assert.Equal(t, models.ScheduleEntry{
		Weekday:           4,
		StartPeriod:       6,
		PeriodCount:       2,
		CourseCode:        "PH103",
		CourseName:        "Vật lý đại cương",
		Credit:            "3",
		GroupCode:         "01",
		PracticeGroupCode: "02",
		CombinationCode:   "TH01",
		LecturerCode:      "GV042",
		LecturerName:      "Nguyễn Văn A",
		ClassCode:         "K67CNTT",
		ClassName:         "K67 Công nghệ thông tin",
		RoomCode:          "ND-305",
		IsMakeup:          true,
		LearnDate:         "2023-08-17",
	}, schedule.TimeableList[0].Sessions[0])
}

func TestSchedule_BothCollectionsAlwaysPresent(t *testing.T) {
	schedule, err := translator.Schedule([]byte(`{"data":{}}`))
	require.NoError(t, err)
	assert.NotNil(t, schedule.LessonTimeList)
	assert.NotNil(t, schedule.TimeableList)

	encoded, err := json.Marshal(schedule)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lessonTimeList":[],"timeableList":[]}`, string(encoded))
}

func TestSchedule_MalformedBodyIsTranslationFailure(t *testing.T) {
	_, err := translator.Schedule([]byte(`{"data": truncated`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTranslation))
}

func TestSchedule_Deterministic(t *testing.T) {
	raw := []byte(`{"data":{
		"ds_tiet_trong_ngay":[{"tiet":1},{"tiet":2},{"tiet":3}],
		"ds_tuan_tkb":[
			{"tuan_hoc_ky":1,"ds_thoi_khoa_bieu":[{"ma_mon":"A"},{"ma_mon":"B"}]},
			{"tuan_hoc_ky":2,"ds_thoi_khoa_bieu":[{"ma_mon":"C"}]}
		]
	}}`)

	first, err := translator.Schedule(raw)
	require.NoError(t, err)
	second, err := translator.Schedule(raw)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)

	// week and session order follow the document
	assert.Equal(t, "A", first.TimeableList[0].Sessions[0].CourseCode)
	assert.Equal(t, "B", first.TimeableList[0].Sessions[1].CourseCode)
	assert.Equal(t, "C", first.TimeableList[1].Sessions[0].CourseCode)
}
