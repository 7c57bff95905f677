package xorg

// Document 表示一份完整的 xorg.conf：有序的 section 集合，
// 注册顺序就是渲染顺序。不做唯一性与类型检查，
// 重复标识符的取舍（"first match wins"）留给消费配置的 X server。
type Document struct {
	sections []Section
}

// NewDocument 创建空 Document。
func NewDocument() *Document {
	return &Document{}
}

// AddSection 把 section 追加到集合末尾；nil 被忽略。
func (d *Document) AddSection(section Section) {
	if section == nil {
		return
	}
	d.sections = append(d.sections, section)
}

// SetSections 整体替换集合（过滤 nil），保留传入顺序。
func (d *Document) SetSections(sections []Section) {
	d.sections = d.sections[:0]
	for _, section := range sections {
		d.AddSection(section)
	}
}

// All 返回注册顺序的 section 列表副本。
func (d *Document) All() []Section {
	if len(d.sections) == 0 {
		return nil
	}
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Len 返回已注册 section 数量。
func (d *Document) Len() int {
	return len(d.sections)
}

// Sections 返回匹配所有给定过滤条件的有序子集。
// tag 为空串表示不过滤类型；identifier 为空串表示不过滤标识符。
// 没有标识符的 section（Files/Module/DRI/ServerFlags）永远不会命中标识符过滤。
func (d *Document) Sections(tag Tag, identifier string) []Section {
	var out []Section
	for _, section := range d.sections {
		if tag != "" && section.Tag() != tag {
			continue
		}
		if identifier != "" {
			identified, ok := section.(Identified)
			if !ok || identified.Identifier() != identifier {
				continue
			}
		}
		out = append(out, section)
	}
	return out
}

// Section 返回第一个匹配的 section。查不到是正常结果，不是错误。
func (d *Document) Section(tag Tag, identifier string) (Section, bool) {
	for _, section := range d.sections {
		if tag != "" && section.Tag() != tag {
			continue
		}
		if identifier != "" {
			identified, ok := section.(Identified)
			if !ok || identified.Identifier() != identifier {
				continue
			}
		}
		return section, true
	}
	return nil, false
}
