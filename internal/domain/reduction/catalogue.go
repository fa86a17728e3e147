package reduction

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PhraseGroup is a named, ordered set of phrase patterns sharing a rhetorical role.
type PhraseGroup struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// Catalogue is the ordered list of phrase groups applied by the ClauseRemover.
// Order matters: patterns are matched and removed in declaration order.
type Catalogue struct {
	Groups []PhraseGroup `yaml:"groups"`
}

// Patterns flattens the catalogue into match order.
func (c Catalogue) Patterns() []string {
	var out []string
	for _, group := range c.Groups {
		out = append(out, group.Patterns...)
	}
	return out
}

// LoadCatalogue reads a catalogue from a YAML file.
func LoadCatalogue(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("read catalogue: %w", err)
	}
	return ParseCatalogue(data)
}

// ParseCatalogue decodes a YAML catalogue document.
func ParseCatalogue(data []byte) (Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalogue{}, fmt.Errorf("parse catalogue: %w", err)
	}
	if len(cat.Patterns()) == 0 {
		return Catalogue{}, errors.New("catalogue has no patterns")
	}
	return cat, nil
}

// DefaultCatalogue returns the built-in English catalogue of polite, filler and meta phrases.
func DefaultCatalogue() Catalogue {
	return Catalogue{Groups: []PhraseGroup{
		{Name: "direct_requests", Patterns: []string{
			`\bhelp me\b`,
			`\bhelp me to\b`,
			`\bhelp me with\b`,
			`\bcan you help me\b`,
			`\bcould you help me\b`,
			`\bwould you help me\b`,
			`\bplease help me\b`,
			`\bassist me\b`,
			`\bassist me with\b`,
			`\bguide me\b`,
		}},
		{Name: "polite_requests", Patterns: []string{
			`\bi would like\b`,
			`\bi would like to\b`,
			`\bi want to\b`,
			`\bi need to\b`,
			`\bi need you to\b`,
			`\bi want you to\b`,
			`\bi would appreciate\b`,
			`\bi would be grateful\b`,
			`\bi would love\b`,
			`\bi would prefer\b`,
			`\bi wish to\b`,
			`\bi hope to\b`,
			`\bi'd like\b`,
			`\bi'd love\b`,
			`\bi'd appreciate\b`,
		}},
		{Name: "question_starters", Patterns: []string{
			`\bcan you\b`,
			`\bcould you\b`,
			`\bwould you\b`,
			`\bwill you\b`,
			`\bare you able to\b`,
			`\bis it possible to\b`,
			`\bis it possible for you to\b`,
			`\bwould it be possible\b`,
			`\bdo you think you could\b`,
			`\bmight you be able to\b`,
			`\bwould you mind\b`,
			`\bcould you possibly\b`,
			`\bwould you please\b`,
			`\bcould you please\b`,
			`\bcan you please\b`,
		}},
		{Name: "courtesy", Patterns: []string{
			`\bplease\b`,
			`\bkindly\b`,
			`\bif you could\b`,
			`\bif possible\b`,
			`\bif you don't mind\b`,
			`\bif you would\b`,
			`\bif you can\b`,
			`\bif you may\b`,
			`\bthank you\b`,
			`\bthanks\b`,
			`\bthank you very much\b`,
			`\bthanks in advance\b`,
			`\bthank you in advance\b`,
			`\bmuch appreciated\b`,
			`\bi appreciate it\b`,
		}},
		{Name: "ai_meta", Patterns: []string{
			`\bas an ai\b`,
			`\byou're an ai\b`,
			`\bsince you're an ai\b`,
			`\bbeing an ai\b`,
			`\bas a language model\b`,
			`\bas a large language model\b`,
			`\busing your ai capabilities\b`,
			`\bwith your ai knowledge\b`,
			`\byour artificial intelligence\b`,
			`\byour machine learning\b`,
			`\byour training data\b`,
			`\byour knowledge base\b`,
			`\bfrom your training\b`,
			`\byou should know\b`,
			`\byou probably know\b`,
			`\byou must know\b`,
			`\bi'm sure you know\b`,
			`\bobviously you know\b`,
		}},
		{Name: "uncertainty", Patterns: []string{
			`\bi think\b`,
			`\bi believe\b`,
			`\bi guess\b`,
			`\bi suppose\b`,
			`\bmaybe\b`,
			`\bperhaps\b`,
			`\bpossibly\b`,
			`\bprobably\b`,
			`\bpresumably\b`,
			`\bapparently\b`,
			`\bseemingly\b`,
			`\ballegedly\b`,
			`\bsupposedly\b`,
		}},
		{Name: "redundant_starters", Patterns: []string{
			`\bso\b`,
			`\bwell\b`,
			`\bokay\b`,
			`\balright\b`,
			`\bbasically\b`,
			`\bessentially\b`,
			`\bfundamentally\b`,
			`\boverall\b`,
			`\bin general\b`,
			`\bgenerally speaking\b`,
			`\bto be honest\b`,
			`\bto be frank\b`,
			`\bto tell the truth\b`,
			`\bfrankly\b`,
			`\bhonestly\b`,
		}},
		{Name: "filler", Patterns: []string{
			`\byou know\b`,
			`\bi mean\b`,
			`\blike\b(?=\s)`,
			`\bactually\b`,
			`\breally\b`,
			`\bjust\b`,
			`\bsimply\b`,
			`\bmerely\b`,
			`\bonly\b`,
			`\bquite\b`,
			`\brather\b`,
			`\bsort of\b`,
			`\bkind of\b`,
			`\bsomewhat\b`,
			`\ba bit\b`,
			`\ba little\b`,
			`\bpretty much\b`,
			`\bmore or less\b`,
			`\bby the way\b`,
			`\banyway\b`,
			`\banyhow\b`,
		}},
		{Name: "greetings", Patterns: []string{
			`\bhi\b`,
			`\bhello\b`,
			`\bhey\b`,
			`\bgreetings\b`,
			`\bgood morning\b`,
			`\bgood afternoon\b`,
			`\bgood evening\b`,
			`\bexcuse me\b`,
			`\bsorry\b`,
			`\bpardon me\b`,
			`\bforgive me\b`,
			`\bapologies\b`,
			`\bmy apologies\b`,
		}},
		{Name: "qualifiers", Patterns: []string{
			`\bif i may ask\b`,
			`\bif you don't mind me asking\b`,
			`\bif i might ask\b`,
			`\bif i may inquire\b`,
			`\bif that's okay\b`,
			`\bif that's alright\b`,
			`\bif that makes sense\b`,
			`\bdoes that make sense\b`,
			`\bdo you understand\b`,
			`\bdo you follow\b`,
			`\bdo you see what i mean\b`,
			`\bget what i'm saying\b`,
			`\bknow what i mean\b`,
		}},
		{Name: "emphasis", Patterns: []string{
			`\bvery much\b`,
			`\bso much\b`,
			`\btoo much\b`,
			`\bway too\b`,
			`\bfar too\b`,
			`\bextremely\b`,
			`\bincredibly\b`,
			`\bamazingly\b`,
			`\babsolutely\b`,
			`\btotally\b`,
			`\bcompletely\b`,
			`\bentirely\b`,
			`\bperfectly\b`,
		}},
		{Name: "discourse_openers", Patterns: []string{
			`\bfirst of all\b`,
			`\bto begin with\b`,
			`\bto start with\b`,
			`\blet me start by saying\b`,
			`\blet me begin by\b`,
			`\bbefore i begin\b`,
			`\bbefore we start\b`,
			`\bbefore anything else\b`,
			`\bfirst and foremost\b`,
			`\bfirst things first\b`,
			`\bfor starters\b`,
			`\bto kick things off\b`,
			`\bto get started\b`,
			`\bto get the ball rolling\b`,
		}},
		{Name: "shared_context", Patterns: []string{
			`\bas i mentioned\b`,
			`\bas i said\b`,
			`\bas i told you\b`,
			`\blike i said\b`,
			`\blike i mentioned\b`,
			`\blike i told you\b`,
			`\bas you know\b`,
			`\bas you're aware\b`,
			`\bas you might know\b`,
			`\bas you probably know\b`,
			`\bas you can imagine\b`,
			`\bas you can see\b`,
			`\bobviously\b`,
			`\bof course\b`,
			`\bnaturally\b`,
			`\bneedless to say\b`,
			`\bit goes without saying\b`,
		}},
		{Name: "closings", Patterns: []string{
			`\bthat's all\b`,
			`\bthat's it\b`,
			`\bthat's everything\b`,
			`\bthat's about it\b`,
			`\bthat should do it\b`,
			`\bthat should be enough\b`,
			`\bthat covers it\b`,
			`\bthat's the gist\b`,
			`\bin summary\b`,
			`\bto summarize\b`,
			`\bto sum up\b`,
			`\bin conclusion\b`,
			`\bto conclude\b`,
			`\bfinally\b`,
			`\blastly\b`,
			`\bin the end\b`,
			`\bat the end of the day\b`,
			`\ball in all\b`,
			`\boverall\b`,
		}},
		{Name: "meta_cognitive", Patterns: []string{
			`\blet me think\b`,
			`\blet me see\b`,
			`\blet me consider\b`,
			`\blet me check\b`,
			`\blet me figure out\b`,
			`\blet me work on\b`,
			`\blet me try\b`,
			`\bi'll try\b`,
			`\bi'll attempt\b`,
			`\bi'll see what i can do\b`,
			`\bi'll do my best\b`,
			`\bi'll give it a shot\b`,
			`\bi'll work on it\b`,
		}},
		{Name: "personal_opinion", Patterns: []string{
			`\bi feel like\b`,
			`\bi feel that\b`,
			`\bit feels like\b`,
			`\bin my opinion\b`,
			`\bin my view\b`,
			`\bfrom my perspective\b`,
			`\bfrom my point of view\b`,
			`\bpersonally\b`,
			`\bfor me\b`,
			`\bas for me\b`,
			`\bspeaking for myself\b`,
			`\bif you ask me\b`,
		}},
		{Name: "question_framing", Patterns: []string{
			`\bi have a question\b`,
			`\bi wanted to ask\b`,
			`\bi was wondering\b`,
			`\bi'm curious about\b`,
			`\bi'm interested in\b`,
			`\bi'd like to know\b`,
			`\bi'd like to ask\b`,
			`\bi'd like to inquire\b`,
			`\bi'd like to find out\b`,
			`\bi need to know\b`,
			`\bi want to know\b`,
			`\bi'm trying to understand\b`,
			`\bi'm trying to figure out\b`,
			`\bi'm looking for\b`,
			`\bi'm searching for\b`,
			`\bi'm seeking\b`,
		}},
	}}
}
