package attendance

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func templateFS(t *testing.T) fstest.MapFS {
	t.Helper()

	f, err := BuildTemplate()
	require.NoError(t, err)
	defer f.Close()

	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))
	return fstest.MapFS{DefaultTemplateName: &fstest.MapFile{Data: buf.Bytes()}}
}

// countingLoader 记录 Open/Close 次数
type countingLoader struct {
	inner  TemplateLoader
	opened int
	closed int
}

func (l *countingLoader) Open(name string) (io.ReadCloser, error) {
	rc, err := l.inner.Open(name)
	if err != nil {
		return nil, err
	}
	l.opened++
	return &closeCounter{ReadCloser: rc, n: &l.closed}, nil
}

type closeCounter struct {
	io.ReadCloser
	n *int
}

func (c *closeCounter) Close() error {
	*c.n++
	return c.ReadCloser.Close()
}

func sampleBatch() []Record {
	base := time.Date(2020, time.November, 2, 9, 0, 0, 0, time.UTC)
	return []Record{
		{EmployeeID: 1, EmployeeFullName: "Сидоров", OfficeID: 10, OfficeName: "Москва", EntranceAt: base, ExitAt: base.Add(8 * time.Hour)},
		{EmployeeID: 2, EmployeeFullName: "Петров", OfficeID: 30, OfficeName: "Нижний Новгород", EntranceAt: base, ExitAt: base.Add(4*time.Hour + time.Second)},
		{EmployeeID: 1, EmployeeFullName: "Сидоров", OfficeID: 10, OfficeName: "Москва", EntranceAt: base.AddDate(0, 0, 1), ExitAt: base.AddDate(0, 0, 1).Add(2 * time.Hour)},
	}
}

func populateSample(t *testing.T, loader TemplateLoader) *excelize.File {
	t.Helper()

	records := sampleBatch()
	rows, err := ComposeSummaryRows(records, AggregateHours(records), 2020, testRanking)
	require.NoError(t, err)

	f, err := Populate(loader, DefaultTemplateName, rows, records)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestPopulate_SummarySheet(t *testing.T) {
	f := populateSample(t, FSLoader{FS: templateFS(t)})

	rows, err := f.GetRows(SummarySheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), SummaryFirstRow+1)

	// 表头保持不变
	assert.Equal(t, []string{"Сотрудник", "Часы", "Офис", "Год"}, rows[SummaryFirstRow-2][:4])
	assert.Equal(t, []string{"Петров", "5", "Нижний Новгород", "2020"}, rows[SummaryFirstRow-1][:4])
	assert.Equal(t, []string{"Сидоров", "10", "Москва", "2020"}, rows[SummaryFirstRow][:4])
	assert.Len(t, rows, SummaryFirstRow+1)
}

func TestPopulate_TotalFormulaSeesWrittenHours(t *testing.T) {
	f := populateSample(t, FSLoader{FS: templateFS(t)})

	total, err := f.CalcCellValue(SummarySheetName, SummaryTotalCell)
	require.NoError(t, err)
	assert.Equal(t, "15", total)
}

func TestPopulate_DetailSheet(t *testing.T) {
	f := populateSample(t, FSLoader{FS: templateFS(t)})

	cell := func(col, row int) string {
		v, err := f.GetCellValue(DetailSheetName, cellName(col, row))
		require.NoError(t, err)
		return v
	}

	// 区块 A：原始记录不去重
	for i, want := range [][]string{
		{"Сидоров", "2020-11-02T09:00:00", "2020-11-02T17:00:00", "10"},
		{"Петров", "2020-11-02T09:00:00", "2020-11-02T13:00:01", "30"},
		{"Сидоров", "2020-11-03T09:00:00", "2020-11-03T11:00:00", "10"},
	} {
		for j, v := range want {
			assert.Equal(t, v, cell(VisitBlockFirstCol+j, DetailFirstRow+i))
		}
	}
	assert.Empty(t, cell(VisitBlockFirstCol, DetailFirstRow+3))

	// 区块 B：每个办公室一次
	assert.Equal(t, "10", cell(OfficeBlockFirstCol, DetailFirstRow))
	assert.Equal(t, "Москва", cell(OfficeBlockFirstCol+1, DetailFirstRow))
	assert.Equal(t, "30", cell(OfficeBlockFirstCol, DetailFirstRow+1))
	assert.Equal(t, "Нижний Новгород", cell(OfficeBlockFirstCol+1, DetailFirstRow+1))
	assert.Empty(t, cell(OfficeBlockFirstCol, DetailFirstRow+2))
}

func TestPopulate_FullRecalcOnLoad(t *testing.T) {
	f := populateSample(t, FSLoader{FS: templateFS(t)})

	props, err := f.GetCalcProps()
	require.NoError(t, err)
	require.NotNil(t, props.FullCalcOnLoad)
	assert.True(t, *props.FullCalcOnLoad)
}

func TestPopulate_TemplateLoadedFreshAndClosed(t *testing.T) {
	loader := &countingLoader{inner: FSLoader{FS: templateFS(t)}}

	first := populateSample(t, loader)
	second := populateSample(t, loader)

	assert.Equal(t, 2, loader.opened)
	assert.Equal(t, 2, loader.closed)
	assert.NotSame(t, first, second)

	// 第二次生成不会叠加第一次写入的数据
	rows, err := second.GetRows(SummarySheetName)
	require.NoError(t, err)
	assert.Len(t, rows, SummaryFirstRow+1)
}

func TestPopulate_MissingTemplate(t *testing.T) {
	f, err := Populate(FSLoader{FS: fstest.MapFS{}}, DefaultTemplateName, nil, nil)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrTemplate))
}

func TestPopulate_CorruptTemplate(t *testing.T) {
	loader := &countingLoader{inner: FSLoader{FS: fstest.MapFS{
		DefaultTemplateName: &fstest.MapFile{Data: []byte("not a zip")},
	}}}

	f, err := Populate(loader, DefaultTemplateName, nil, nil)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrTemplate))
	assert.Equal(t, 1, loader.closed)
}

func TestPopulate_TemplateWithoutDetailSheet(t *testing.T) {
	single := excelize.NewFile()
	buf := new(bytes.Buffer)
	require.NoError(t, single.Write(buf))
	single.Close()

	loader := FSLoader{FS: fstest.MapFS{DefaultTemplateName: &fstest.MapFile{Data: buf.Bytes()}}}
	f, err := Populate(loader, DefaultTemplateName, nil, nil)
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrTemplate))
}
