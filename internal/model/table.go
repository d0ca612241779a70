package model

import "fmt"

// CellUpdate 一次单元格写入
type CellUpdate struct {
	Row   int
	Col   int
	Value any
}

// RosterTable 点名册表格：原始网格 + 写入覆盖层
// 原始网格按读取结果保持不变，所有写入只记录在覆盖层中；
// 导出时仅把与原始值不同的覆盖单元格写回模板副本，保证未改动的
// 单元格（含样式、合并、公式）原样保留。
type RosterTable struct {
	rows    [][]string
	updates map[[2]int]any
	order   [][2]int
}

// NewRosterTable 从原始网格创建点名册表格
func NewRosterTable(rows [][]string) *RosterTable {
	return &RosterTable{
		rows:    rows,
		updates: make(map[[2]int]any),
	}
}

// RowCount 总行数
func (t *RosterTable) RowCount() int {
	return len(t.rows)
}

// RowLen 指定行的列数，越界返回 0
func (t *RosterTable) RowLen(row int) int {
	if row < 0 || row >= len(t.rows) {
		return 0
	}
	return len(t.rows[row])
}

// Cell 原始单元格内容，越界返回空串
func (t *RosterTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	r := t.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Set 写入单元格（记录到覆盖层，原始网格不动）
func (t *RosterTable) Set(row, col int, value any) {
	key := [2]int{row, col}
	if _, ok := t.updates[key]; !ok {
		t.order = append(t.order, key)
	}
	t.updates[key] = value
}

// EffectiveCell 当前生效的单元格内容：覆盖层优先，其次原始值
func (t *RosterTable) EffectiveCell(row, col int) string {
	if v, ok := t.updates[[2]int{row, col}]; ok {
		return fmt.Sprint(v)
	}
	return t.Cell(row, col)
}

// Updates 按写入顺序返回所有覆盖单元格
func (t *RosterTable) Updates() []CellUpdate {
	out := make([]CellUpdate, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, CellUpdate{Row: key[0], Col: key[1], Value: t.updates[key]})
	}
	return out
}
