package pipeline

import (
	"context"
	"fmt"

	"github.com/plan2code/backend/internal/pkg/llm"
	"k8s.io/klog/v2"
)

// DocumentSections 最终规划文档的章节清单，构建期固定
var DocumentSections = []string{
	"Executive Summary & Project Charter",
	"Business Goals and Objectives",
	"Work Breakdown Structure (WBS)",
	"Risk Assessment and Mitigation",
	"Architecture Recommendation",
	"Timeline and Sprint Plan",
	"Resource and Team Structure",
	"Budget Allocation",
	"Quality and Governance Plan",
	"Best Practices and Modern Trends",
}

const synthesizerSystemPrompt = "You are a helpful and precise software architect."

// Synthesizer 把流水线 Trace 合成为一份完整的规划文档
type Synthesizer struct {
	llm *llm.Client
}

// NewSynthesizer 创建文档合成器
func NewSynthesizer(client *llm.Client) *Synthesizer {
	return &Synthesizer{llm: client}
}

// Synthesize 拼接全部阶段输出并发起一次成文调用
// 原样返回修剪后的应答，不校验章节完整性
func (s *Synthesizer) Synthesize(ctx context.Context, trace Trace) (string, error) {
	klog.V(6).Infof("开始合成规划文档: stages=%d", len(trace))

	document, err := s.llm.Complete(ctx, synthesizerSystemPrompt, buildDocumentPrompt(trace.Combined()))
	if err != nil {
		return "", fmt.Errorf("document synthesis failed: %w", err)
	}

	return document, nil
}

// buildDocumentPrompt 构造最终成文提示词，章节结构固定
func buildDocumentPrompt(agentOutput string) string {
	return fmt.Sprintf(`
You are a senior software architect and project planner. Based on the following multi-agent analysis, generate a **comprehensive and detailed planning document** for the software project described.

Your output must include the following sections, each with rich detail, bullet points, and structured formatting:

---

### 1. Executive Summary & Project Charter
- Project background and justification
- Vision, mission, and business case
- Stakeholder matrix and approval authority
- Scope boundaries (inclusions and exclusions)
- Success criteria and KPIs

### 2. Business Goals and Objectives
- Strategic business goals
- Technical and operational objectives
- User experience and accessibility goals

### 3. Work Breakdown Structure (WBS)
- Major deliverables and sub-deliverables
- WBS codes and task groupings
- Mapping to project phases

### 4. Risk Assessment and Mitigation
- Technical, resource, and integration risks
- Security and compliance risks
- Mitigation strategies and escalation paths

### 5. Architecture Recommendation
- System architecture pattern (e.g., microservices)
- Frontend, backend, database, and cloud design
- DevOps and CI/CD strategy
- Security architecture and data flow

### 6. Timeline and Sprint Plan
- 6-month roadmap with phases and milestones
- Sprint cadence and feature allocation
- Critical path and dependency mapping

### 7. Resource and Team Structure
- Role assignments for all major functions
- Team structure aligned with team size and location type
- Skillset alignment with tech stack

### 8. Budget Allocation
- Cost breakdown by phase and function
- Infrastructure, tooling, and contingency
- Budget tracking and control mechanisms

### 9. Quality and Governance Plan
- QA strategy, testing phases, and quality gates
- Change control and versioning policy
- Communication and escalation protocols

### 10. Best Practices and Modern Trends
- Industry-standard tooling and frameworks
- Accessibility, observability, and performance practices
- Cloud-native and DevOps recommendations

---

Use the following agent insights as your factual input:

%s

---

Do not explain what to do — instead, **perform the planning** as if you were a professional team delivering this document to stakeholders. Output must be 100%% textual. No diagrams or tables.
`, agentOutput)
}
