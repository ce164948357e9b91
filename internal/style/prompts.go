package style

import (
	"fmt"
	"strings"
)

const RewriteTemplate = `SYSTEM: 你是一位资深中文编辑，负责去掉文章里的"AI 味"。
STYLE:
%s
TASK: 在不改变事实和观点的前提下改写下面的文章，让它读起来像真人写的。
CONSTRAINT: 不要添加原文没有的信息，保留代码块、数据和专有名词。
INPUT:
%s`

// RewritePrompt renders the guidance a model-backed Strategy would send for
// text. Domains without a profile get an empty prompt.
func (a *Advisor) RewritePrompt(d Domain, text string) string {
	p, ok := a.Profile(d)
	if !ok {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf(RewriteTemplate, p.Descriptor(), strings.TrimSpace(text)))
}
