package attendance

// ── 报表模板布局 ──
//
// 模板 attendance.xlsx 的单元格坐标是与下游（HR 手工透视表、宏）之间的二进制兼容约定，
// 修改任何一项都必须同步更新模板文件。所有坐标均为 excelize 的 1 基行列号。
//
//	Sheet[0] summary:  第 1 行标题，第 3 行表头，第 4 行起逐员工写入
//	                   A 姓名 | B 工时 | C 办公室 | D 年份
//	Sheet[1] detail:   第 1 行表头，第 2 行起两个并列区块
//	                   A 姓名 | B 进入时间 | C 离开时间 | D 办公室ID    （区块 A：原始打卡）
//	                   F 办公室ID | G 办公室名称                      （区块 B：办公室字典）
const (
	// SummarySheetIndex 汇总表在工作簿中的位置
	SummarySheetIndex = 0
	// SummaryFirstRow 汇总表第一条数据所在行（表头占用第 1–3 行）
	SummaryFirstRow = 4
	// SummaryFirstCol 汇总表起始列（A）
	SummaryFirstCol = 1

	// DetailSheetIndex 明细表在工作簿中的位置
	DetailSheetIndex = 1
	// DetailFirstRow 明细表两个区块共用的首个数据行
	DetailFirstRow = 2
	// VisitBlockFirstCol 区块 A（原始打卡记录）起始列（A）
	VisitBlockFirstCol = 1
	// OfficeBlockFirstCol 区块 B（办公室字典）起始列（F）
	OfficeBlockFirstCol = 6
)

// TimestampLayout 明细表中进入/离开时间的文本格式
const TimestampLayout = "2006-01-02T15:04:05"
