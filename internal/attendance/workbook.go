package attendance

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/xuri/excelize/v2"
)

// TemplateLoader 报表模板来源
type TemplateLoader interface {
	Open(name string) (io.ReadCloser, error)
}

// FSLoader 从文件系统（通常是 os.DirFS(report.template_dir)）读取模板
type FSLoader struct {
	FS fs.FS
}

// Open 打开模板文件，调用方负责关闭
func (l FSLoader) Open(name string) (io.ReadCloser, error) {
	return l.FS.Open(name)
}

// Populate 读取模板并写入汇总表与明细表，返回新的内存工作簿。
//
// 模板每次调用重新加载，模板文件本身不会被修改；返回的 *excelize.File 由调用方 Close。
// 写入为按坐标覆盖：模板中不存在的行/单元格会被创建，已有单元格原位覆盖，样式保留。
func Populate(loader TemplateLoader, name string, rows []MonthlySummary, records []Record) (*excelize.File, error) {
	rc, err := loader.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: 打开模板 %q 失败: %w", ErrTemplate, name, err)
	}
	defer rc.Close()

	f, err := excelize.OpenReader(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: 解析模板 %q 失败: %w", ErrTemplate, name, err)
	}

	if err := fill(f, rows, records); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, rows []MonthlySummary, records []Record) error {
	summary, err := sheetAt(f, SummarySheetIndex)
	if err != nil {
		return err
	}
	detail, err := sheetAt(f, DetailSheetIndex)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if err := writeRow(f, summary, SummaryFirstRow+i, SummaryFirstCol,
			row.EmployeeFullName, row.TotalHours, row.OfficeName, row.Year); err != nil {
			return err
		}
	}

	for i, r := range records {
		if err := writeRow(f, detail, DetailFirstRow+i, VisitBlockFirstCol,
			r.EmployeeFullName,
			r.EntranceAt.Format(TimestampLayout),
			r.ExitAt.Format(TimestampLayout),
			r.OfficeID); err != nil {
			return err
		}
	}

	for i, o := range DistinctOffices(records) {
		if err := writeRow(f, detail, DetailFirstRow+i, OfficeBlockFirstCol, o.ID, o.Name); err != nil {
			return err
		}
	}

	return recalculate(f)
}

func sheetAt(f *excelize.File, index int) (string, error) {
	name := f.GetSheetName(index)
	if name == "" {
		return "", fmt.Errorf("%w: 缺少第 %d 个工作表", ErrTemplate, index+1)
	}
	return name, nil
}

// writeRow 从 (row, firstCol) 起依次写入 values
func writeRow(f *excelize.File, sheet string, row, firstCol int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(firstCol+i, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("写入 %s!%s 失败: %w", sheet, cell, err)
		}
	}
	return nil
}

// recalculate 标记工作簿在打开时对全部公式单元格重新计算
func recalculate(f *excelize.File) error {
	on := true
	if err := f.SetCalcProps(&excelize.CalcPropsOptions{
		FullCalcOnLoad: &on,
		ForceFullCalc:  &on,
	}); err != nil {
		return fmt.Errorf("设置公式重算失败: %w", err)
	}
	return nil
}
