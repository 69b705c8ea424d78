package leadgen

import (
	_ "embed"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"github.com/sells-group/prospect-cli/internal/model"
)

// SourceGenerated is the provenance tag for synthetic placeholder
// contacts. Downstream consumers must treat these as low-confidence
// filler, never as scraped fact.
const SourceGenerated = "Generated Pattern"

// placeholdersPerCompany bounds how many synthetic contacts are invented
// for a company whose site yielded nothing.
const placeholdersPerCompany = 2

//go:embed roles.yaml
var rolesYAML []byte

type placeholderRole struct {
	Title      string   `yaml:"title"`
	FirstNames []string `yaml:"first_names"`
}

type placeholderCorpus struct {
	Roles     []placeholderRole `yaml:"roles"`
	LastNames []string          `yaml:"last_names"`
}

func loadCorpus() placeholderCorpus {
	var c placeholderCorpus
	if err := yaml.Unmarshal(rolesYAML, &c); err != nil {
		panic("leadgen: embedded roles.yaml invalid: " + err.Error())
	}
	return c
}

var corpus = loadCorpus()

// placeholderContacts synthesizes filler contacts for a company with a
// resolvable domain but no extractable personnel. Names are drawn from
// the embedded corpus with the injected RNG so tests can pin a seed.
func placeholderContacts(company model.CompanyCandidate, rng *rand.Rand) []model.ContactCandidate {
	n := placeholdersPerCompany
	if n > len(corpus.Roles) {
		n = len(corpus.Roles)
	}

	contacts := make([]model.ContactCandidate, 0, n)
	for _, role := range corpus.Roles[:n] {
		contact := model.ContactCandidate{
			FirstName:   role.FirstNames[rng.IntN(len(role.FirstNames))],
			LastName:    corpus.LastNames[rng.IntN(len(corpus.LastNames))],
			JobTitle:    role.Title,
			CompanyName: company.Name,
			Source:      SourceGenerated,
		}
		contacts = append(contacts, contact)
	}
	return contacts
}
