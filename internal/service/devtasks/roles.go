package devtasks

import "fmt"

// Role 单阶段补全调用的角色标签
type Role int

const (
	RoleTicketGenerator Role = iota
	RoleDevTaskExtractor
	RoleFrontendTasks
	RoleBackendTasks
	RoleDatabaseTasks
	RoleCloudTasks
	RoleDevOpsTasks
	RoleDesignTasks
	RoleCodeGenerator
)

// roleInstructions 每个角色唯一的系统提示词
// 历史上出现过重复定义互相覆盖的角色，这里只保留一套规范定义
var roleInstructions = map[Role]string{
	RoleTicketGenerator:  "You are a precise and methodical planner with experience in Agile delivery. You translate structured plans into JIRA-ready ticket summaries and descriptions.",
	RoleDevTaskExtractor: "You are a senior engineer who extracts concrete development tasks (APIs, DB setup, CI/CD, frontend components) from project plans, skipping planning and meetings.",
	RoleFrontendTasks:    "You are a frontend tech lead. You derive concrete frontend development tasks from project plans.",
	RoleBackendTasks:     "You are a backend tech lead. You derive concrete backend development tasks from project plans.",
	RoleDatabaseTasks:    "You are a database engineer. You derive concrete data modeling and database setup tasks from project plans.",
	RoleCloudTasks:       "You are a cloud architect. You derive concrete cloud infrastructure tasks from project plans.",
	RoleDevOpsTasks:      "You are a DevOps engineer. You derive concrete CI/CD, automation, and operations tasks from project plans.",
	RoleDesignTasks:      "You are a product designer. You derive concrete UX and UI design tasks from project plans.",
	RoleCodeGenerator:    "You are a precise full-stack developer. You generate production-quality code snippets for individual tasks.",
}

// categoryRoles 分类名到角色的显式映射
var categoryRoles = map[string]Role{
	"Frontend": RoleFrontendTasks,
	"Backend":  RoleBackendTasks,
	"Database": RoleDatabaseTasks,
	"Cloud":    RoleCloudTasks,
	"DevOps":   RoleDevOpsTasks,
	"Design":   RoleDesignTasks,
}

// Instruction 返回角色的系统提示词
func (r Role) Instruction() string {
	return roleInstructions[r]
}

// RoleForCategory 按分类名解析角色，未知分类返回 ErrUnknownCategory
func RoleForCategory(category string) (Role, error) {
	role, ok := categoryRoles[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return role, nil
}
