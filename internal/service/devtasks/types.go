package devtasks

import "errors"

// TicketCandidate 从补全结果中解析出的候选工单
type TicketCandidate struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// CategoryTech 某个技术栈分类及其涉及的技术
type CategoryTech struct {
	Name string   `json:"name"`
	Tech []string `json:"tech"`
}

// ErrMalformedTicketResponse 工单数组解析失败
// 必须上抛给调用方：空工单列表和不可用应答是两种不同结果
var ErrMalformedTicketResponse = errors.New("malformed ticket response: no parseable JSON array")

// ErrUnknownCategory 分类名没有对应的角色
var ErrUnknownCategory = errors.New("unknown category")
