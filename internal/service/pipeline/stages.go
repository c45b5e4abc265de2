package pipeline

import (
	"fmt"

	"github.com/plan2code/backend/internal/service/intake"
	"github.com/plan2code/backend/internal/utils"
)

// 主规划流水线的阶段名
const (
	StageIntakeValidation           = "intake-validation"
	StageObjectivesMapping          = "objectives-mapping"
	StageRiskIdentification         = "risk-identification"
	StageArchitectureRecommendation = "architecture-recommendation"
	StageEffortEstimation           = "effort-estimation"
	StageDependencyMapping          = "dependency-mapping"
	StageSprintPlanning             = "sprint-planning"
	StageTrendResearch              = "trend-research"
	StageCritique                   = "critique"
	StageTicketExtraction           = "ticket-extraction"
)

// PlanningStages 主规划流水线的固定阶段序列
// 顺序是设计决策：靠后阶段的提示词默认前序叙述已经成立，调整顺序会影响产出质量
func PlanningStages() []StageSpec {
	return []StageSpec{
		{
			Name: StageIntakeValidation,
			Role: "You are a project intake analyst who preps project briefs for AI systems. You validate and enrich project input to ensure clarity and completeness.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Refine and validate this project input: %s\n\nProvide a well-structured summary of validated and completed input fields.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageObjectivesMapping,
			Role: "You are a strategist for stakeholder objectives. You map project goals onto measurable business KPIs.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Extract goals and KPIs from: %s\n\nProvide a list of business goals and measurable KPIs for this project.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageRiskIdentification,
			Role: "You are a risk consultant for enterprise systems. You flag project risks early and propose mitigations.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Analyze risks for: %s\n\nProvide a list of risks with brief mitigation strategies relevant to the project's tech, team, and scope.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageArchitectureRecommendation,
			Role: "You are a tech lead who designs clean, modern, scalable backends. You suggest the optimal system architecture.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Recommend a system architecture for: %s\n\nProvide a detailed architecture plan based on the provided tech stack, budget, and team size.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageEffortEstimation,
			Role: "You are a delivery lead experienced in sizing software work. You estimate effort in developer-days or story points.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Estimate effort (developer-days or story points) for major deliverables in: %s\n\nProvide effort estimation for each major deliverable/task, with totals per phase.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageDependencyMapping,
			Role: "You are a program planner who maps task dependencies and finds opportunities for parallel execution.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Identify task dependencies and opportunities for parallel execution for: %s\n\nList dependencies, parallel work streams, and the critical path.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageSprintPlanning,
			Role: "You are an agile project manager who knows when things break down. You distribute deliverables into realistic sprints.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Distribute deliverables into realistic 2-week sprints for a 6-month roadmap for: %s\n\nProvide 12 sprints with allocated features, parallel execution where possible, and milestones.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageTrendResearch,
			Role: "You are a thought leader who studies dev conferences and cloud blogs. You inject modern best practices so the architecture and dev stack stay future-proof.",
			BuildPrompt: func(summary *intake.ProjectSummary, _ Trace) string {
				return fmt.Sprintf("Suggest modern best practices and tooling updates for: %s\n\nProvide a brief overview of current industry trends, modern tooling choices, and best practices for similar systems.", utils.ToJSON(summary))
			},
		},
		{
			Name: StageCritique,
			Role: "You are a seasoned delivery reviewer. You critique draft project plans for realism, gaps, and execution readiness.",
			BuildPrompt: func(summary *intake.ProjectSummary, trace Trace) string {
				return fmt.Sprintf("Review the draft project plan for realism, gaps, and execution readiness based on: %s\n\nAnalysis so far:\n%s\n\nProvide critique and recommendations for improving the plan so it's execution-ready.", utils.ToJSON(summary), trace.Combined())
			},
		},
		{
			Name: StageTicketExtraction,
			Role: "You are a precise and methodical planner with experience in Agile delivery. You translate structured plans into JIRA-ready ticket summaries and descriptions.",
			BuildPrompt: func(_ *intake.ProjectSummary, trace Trace) string {
				return fmt.Sprintf("Extract actionable tasks from the project plan and suggest them as JIRA ticket summaries and descriptions.\n\nProject plan analysis:\n%s\n\nRespond with a JSON list of {\"summary\": ..., \"description\": ...} for each suggested ticket, derived from key project plan sections.", trace.Combined())
			},
		},
	}
}
