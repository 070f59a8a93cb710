package attendance

import "sort"

// OfficeRanking 办公室名称 → 排序优先级（数值越小越靠前），由配置提供
type OfficeRanking map[string]int

// Rank 查询办公室优先级；未配置的办公室返回 *UnknownOfficeError，不做默认值兜底
func (r OfficeRanking) Rank(office string) (int, error) {
	rank, ok := r[office]
	if !ok {
		return 0, &UnknownOfficeError{Office: office}
	}
	return rank, nil
}

// MonthlySummary 员工月度汇总行
type MonthlySummary struct {
	EmployeeID       int64
	EmployeeFullName string
	OfficeName       string
	TotalHours       int
	Year             int

	officeRank int
}

// Office 明细表办公室字典中的一行
type Office struct {
	ID   int64
	Name string
}

// ComposeSummaryRows 为批次中的每位员工生成一条汇总行。
//
// 行的身份是员工 ID：同名同办公室的两位员工仍各占一行。
// 展示顺序为 (办公室优先级, 姓名)，两者都相同时按员工 ID 排列。
// 任一记录的办公室不在 ranking 中时返回 ErrUnknownOffice。
func ComposeSummaryRows(records []Record, hours map[int64]int, year int, ranking OfficeRanking) ([]MonthlySummary, error) {
	rows := make([]MonthlySummary, 0, len(hours))
	seen := make(map[int64]bool, len(hours))

	for _, r := range records {
		rank, err := ranking.Rank(r.OfficeName)
		if err != nil {
			return nil, err
		}
		if seen[r.EmployeeID] {
			continue
		}
		seen[r.EmployeeID] = true

		rows = append(rows, MonthlySummary{
			EmployeeID:       r.EmployeeID,
			EmployeeFullName: r.EmployeeFullName,
			OfficeName:       r.OfficeName,
			TotalHours:       hours[r.EmployeeID],
			Year:             year,
			officeRank:       rank,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].officeRank != rows[j].officeRank {
			return rows[i].officeRank < rows[j].officeRank
		}
		if rows[i].EmployeeFullName != rows[j].EmployeeFullName {
			return rows[i].EmployeeFullName < rows[j].EmployeeFullName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	return rows, nil
}

// DistinctOffices 返回批次中出现过的办公室，每个 ID 一次，按 ID 升序
func DistinctOffices(records []Record) []Office {
	seen := make(map[int64]bool)
	var offices []Office
	for _, r := range records {
		if seen[r.OfficeID] {
			continue
		}
		seen[r.OfficeID] = true
		offices = append(offices, Office{ID: r.OfficeID, Name: r.OfficeName})
	}

	sort.Slice(offices, func(i, j int) bool { return offices[i].ID < offices[j].ID })
	return offices
}
