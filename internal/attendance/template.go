package attendance

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// 默认模板中的工作表名称与汇总公式位置
const (
	SummarySheetName = "summary"
	DetailSheetName  = "detail"

	// SummaryTotalCell 汇总表中工时合计公式所在单元格
	SummaryTotalCell = "G3"
)

// DefaultTemplateName 默认模板文件名
const DefaultTemplateName = "attendance.xlsx"

// BuildTemplate 生成默认报表模板（表头、列宽、合计公式），布局与 layout.go 一致
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheetName); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(DetailSheetName); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	// ── summary ──
	headerRow := SummaryFirstRow - 1
	f.SetCellValue(SummarySheetName, "A1", "Отчёт по посещаемости")
	f.MergeCell(SummarySheetName, "A1", "D1")
	if err := writeRow(f, SummarySheetName, headerRow, SummaryFirstCol, "Сотрудник", "Часы", "Офис", "Год"); err != nil {
		f.Close()
		return nil, err
	}
	f.SetCellStyle(SummarySheetName, cellName(SummaryFirstCol, headerRow), cellName(SummaryFirstCol+3, headerRow), headerStyle)
	f.SetCellValue(SummarySheetName, "F3", "Итого часов")
	hoursCol, _ := excelize.ColumnNumberToName(SummaryFirstCol + 1)
	f.SetCellFormula(SummarySheetName, SummaryTotalCell,
		fmt.Sprintf("SUM(%s%d:%s%d)", hoursCol, SummaryFirstRow, hoursCol, 10000))
	f.SetColWidth(SummarySheetName, "A", "A", 36)
	f.SetColWidth(SummarySheetName, "B", "D", 14)

	// ── detail ──
	detailHeader := DetailFirstRow - 1
	if err := writeRow(f, DetailSheetName, detailHeader, VisitBlockFirstCol, "Сотрудник", "Вход", "Выход", "ID офиса"); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRow(f, DetailSheetName, detailHeader, OfficeBlockFirstCol, "ID офиса", "Офис"); err != nil {
		f.Close()
		return nil, err
	}
	f.SetCellStyle(DetailSheetName, cellName(VisitBlockFirstCol, detailHeader), cellName(VisitBlockFirstCol+3, detailHeader), headerStyle)
	f.SetCellStyle(DetailSheetName, cellName(OfficeBlockFirstCol, detailHeader), cellName(OfficeBlockFirstCol+1, detailHeader), headerStyle)
	f.SetColWidth(DetailSheetName, "A", "A", 36)
	f.SetColWidth(DetailSheetName, "B", "C", 22)
	f.SetColWidth(DetailSheetName, "G", "G", 24)

	f.SetActiveSheet(SummarySheetIndex)
	return f, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
