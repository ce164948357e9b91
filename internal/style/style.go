package style

import (
	"strings"
)

// Domain is the content genre a document is written for.
type Domain string

const (
	Tech     Domain = "tech"
	Essay    Domain = "essay"
	Business Domain = "business"
	Casual   Domain = "casual"
	General  Domain = "general"
)

var Domains = []Domain{Tech, Essay, Business, Casual, General}

// ParseDomain normalizes s. The second result is false when s is not a
// known domain; the normalized value is still returned so callers can carry
// it through, since an unknown domain simply has no profile.
func ParseDomain(s string) (Domain, bool) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return General, true
	}
	for _, known := range Domains {
		if d == known {
			return d, true
		}
	}
	return d, false
}

func (d Domain) String() string { return string(d) }

// Profile describes the register heavy-tier rewriting should lean toward.
type Profile struct {
	Domain     Domain
	Title      string
	Guidelines []string
	Summary    string
}

// Descriptor renders the profile as a single block of guidance text.
func (p Profile) Descriptor() string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("：\n")
	for _, g := range p.Guidelines {
		b.WriteString("- ")
		b.WriteString(g)
		b.WriteString("\n")
	}
	b.WriteString("风格：")
	b.WriteString(p.Summary)
	return b.String()
}

var defaultProfiles = map[Domain]Profile{
	Tech: {
		Domain: Tech,
		Title:  "技术文章风格",
		Guidelines: []string{
			"保留专业术语，但解释要接地气",
			"用类比和比喻降低认知门槛",
			"允许适度的\"硬核\"表达",
			"保留代码块和技术细节",
		},
		Summary: "精准、务实、有洞见、不炫技",
	},
	Essay: {
		Domain: Essay,
		Title:  "随笔散文风格",
		Guidelines: []string{
			"情感优先，逻辑次之",
			"多用感官描写和场景还原",
			"允许碎片化叙述",
			"强调个人体验",
		},
		Summary: "温度、细腻、留白、共鸣",
	},
	Business: {
		Domain: Business,
		Title:  "商业分析风格",
		Guidelines: []string{
			"数据驱动，观点明确",
			"用案例和故事包装抽象概念",
			"结论前置，论证在后",
			"适度使用行业术语",
		},
		Summary: "洞察、锐利、有说服力",
	},
	Casual: {
		Domain: Casual,
		Title:  "casual 内容风格",
		Guidelines: []string{
			"最大程度口语化",
			"允许网络用语和表情",
			"短句为主，节奏轻快",
			"朋友聊天一样的平等视角",
		},
		Summary: "轻松、好玩、不做作、有梗",
	},
}
