package intake

// 技术栈分类，顺序固定
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryCloud    = "cloud"
	CategoryDevOps   = "devops"
	CategoryDesign   = "design"
)

// TechCategories 规范化后 TechStack 必须包含的全部分类
var TechCategories = []string{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryCloud,
	CategoryDevOps,
	CategoryDesign,
}

// MetaKeys 规范化后 Meta 必须包含的全部键
var MetaKeys = []string{
	"startDate",
	"duration",
	"teamSize",
	"budget",
	"experience",
	"locationType",
	"otherTech",
}

// ProjectInput 结构化表单输入
type ProjectInput struct {
	ProjectName        string   `json:"projectName"`
	ProjectDescription string   `json:"projectDescription"`
	Stakeholder        string   `json:"stakeholder"`
	Category           string   `json:"category"`
	StartDate          string   `json:"startDate"`
	ExpectedDuration   string   `json:"expectedDuration"`
	DurationUnit       string   `json:"durationUnit"`
	TeamSize           string   `json:"teamSize"`
	Budget             string   `json:"budget"`
	Experience         string   `json:"experience"`
	LocationType       string   `json:"locationType"`
	Frontend           []string `json:"frontend"`
	Backend            []string `json:"backend"`
	Database           []string `json:"database"`
	Cloud              []string `json:"cloud"`
	DevOps             []string `json:"devops"`
	Design             []string `json:"design"`
	OtherTech          string   `json:"otherTech,omitempty"`
}

// ProjectSummary 规范化后的项目概要，后续所有 Stage 都依赖这个形状
// 不论输入走哪条路径，TechStack 六个分类、Meta 七个键都必须存在（值可为空）
type ProjectSummary struct {
	ProjectName        string              `json:"projectName"`
	ProjectDescription string              `json:"projectDescription"`
	Stakeholders       string              `json:"stakeholders"`
	TechStack          map[string][]string `json:"techStack"`
	Meta               map[string]string   `json:"meta"`
}

// NewProjectSummary 创建带全量键的空概要
func NewProjectSummary() *ProjectSummary {
	summary := &ProjectSummary{
		TechStack: make(map[string][]string, len(TechCategories)),
		Meta:      make(map[string]string, len(MetaKeys)),
	}
	for _, category := range TechCategories {
		summary.TechStack[category] = []string{}
	}
	for _, key := range MetaKeys {
		summary.Meta[key] = ""
	}
	return summary
}

// FromInput 把结构化表单映射为规范概要
func FromInput(input *ProjectInput) *ProjectSummary {
	summary := NewProjectSummary()
	summary.ProjectName = input.ProjectName
	summary.ProjectDescription = input.ProjectDescription
	summary.Stakeholders = input.Stakeholder
	summary.TechStack[CategoryFrontend] = emptyIfNil(input.Frontend)
	summary.TechStack[CategoryBackend] = emptyIfNil(input.Backend)
	summary.TechStack[CategoryDatabase] = emptyIfNil(input.Database)
	summary.TechStack[CategoryCloud] = emptyIfNil(input.Cloud)
	summary.TechStack[CategoryDevOps] = emptyIfNil(input.DevOps)
	summary.TechStack[CategoryDesign] = emptyIfNil(input.Design)
	summary.Meta["startDate"] = input.StartDate
	summary.Meta["duration"] = input.ExpectedDuration
	summary.Meta["teamSize"] = input.TeamSize
	summary.Meta["budget"] = input.Budget
	summary.Meta["experience"] = input.Experience
	summary.Meta["locationType"] = input.LocationType
	summary.Meta["otherTech"] = input.OtherTech
	return summary
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
