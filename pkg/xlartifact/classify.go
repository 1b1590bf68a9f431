package xlartifact

import (
	"strings"

	"github.com/ukaji3/xlartifact-go/pkg/xlartifact/models"
)

// classificationRule maps sheet-name keywords to a content type.
type classificationRule struct {
	contentType models.ContentType
	keywords    []string
}

// classificationRules are evaluated top to bottom; the first rule with a
// keyword contained in the lower-cased sheet name wins.
var classificationRules = []classificationRule{
	{models.ContentGuardianSchema, []string{"schema", "pdd", "mr", "monitoring"}},
	{models.ContentValidationData, []string{"test", "calc", "calculation", "validation"}},
	{models.ContentParameterData, []string{"param", "input", "output"}},
	{models.ContentToolIntegration, []string{"tool", "ar-tool", "cdm"}},
}

// Classify labels a sheet by its name alone.
func Classify(sheetName string) models.ContentType {
	name := strings.ToLower(sheetName)
	for _, rule := range classificationRules {
		if containsAny(name, rule.keywords) {
			return rule.contentType
		}
	}
	return models.ContentGeneralData
}

// IsSchemaSheet reports whether a sheet name carries a schema keyword.
func IsSchemaSheet(sheetName string) bool {
	return Classify(sheetName) == models.ContentGuardianSchema
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
