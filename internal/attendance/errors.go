package attendance

import (
	"errors"
	"fmt"
)

// ErrUnknownOffice 办公室不在排序表中：办公室主数据与 report.office_ranks 配置不一致
var ErrUnknownOffice = errors.New("办公室未配置排序优先级")

// ErrTemplate 报表模板不可读、损坏或缺少约定的工作表
var ErrTemplate = errors.New("报表模板无效")

// UnknownOfficeError 携带未识别的办公室名称
type UnknownOfficeError struct {
	Office string
}

func (e *UnknownOfficeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownOffice.Error(), e.Office)
}

// Is 使 errors.Is(err, ErrUnknownOffice) 成立
func (e *UnknownOfficeError) Is(target error) bool {
	return target == ErrUnknownOffice
}
