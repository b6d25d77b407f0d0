package glossary

import "fmt"

// Registry serves plain-language glossaries per test type. Definitions are
// written at a 6th-8th grade reading level for patient-facing display.
type Registry struct {
	glossaries map[string]map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		glossaries: map[string]map[string]string{
			"echo": echoGlossary,
			"labs": labGlossary,
		},
	}
}

// Get returns the glossary for a test type.
func (r *Registry) Get(testType string) (map[string]string, error) {
	g, ok := r.glossaries[testType]
	if !ok {
		return nil, fmt.Errorf("unknown test type: %s", testType)
	}
	return g, nil
}

// Types lists the known test types.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.glossaries))
	for t := range r.glossaries {
		types = append(types, t)
	}
	return types
}

var echoGlossary = map[string]string{
	"Echocardiogram": "An ultrasound test that uses sound waves to create pictures of the heart. " +
		"It shows the heart's size, shape, and how well it is pumping.",
	"Doppler": "A technique used during an echocardiogram to measure the speed and direction " +
		"of blood flow through the heart and blood vessels.",
	"Left Ventricle": "The heart's main pumping chamber, located in the lower left. It pumps " +
		"oxygen-rich blood out to the body through the aorta.",
	"Ejection Fraction": "The percentage of blood the left ventricle pumps out with each beat. " +
		"A normal value is usually between 55 and 70 percent.",
	"Mitral Regurgitation": "A leak in the mitral valve that lets some blood flow backward. " +
		"Small (trace or mild) leaks are common and often harmless.",
	"Tricuspid Regurgitation": "A leak in the tricuspid valve. A small amount is found in most " +
		"healthy people and is usually not a concern.",
	"Pericardial Effusion": "Extra fluid in the sac around the heart. Small amounts may not cause " +
		"problems, but larger amounts can press on the heart.",
}

var labGlossary = map[string]string{
	"Reference Range": "The range of values that is considered normal for a particular test. " +
		"Results outside this range may need further evaluation, but a single " +
		"out-of-range result does not always mean something is wrong.",
	"Flag": "A marker on a lab result (usually 'H' for high or 'L' for low) that " +
		"shows the value is outside the normal reference range.",
	"Fasting": "Not eating or drinking anything except water for a period of time " +
		"(usually 8-12 hours) before a blood test.",
	"Comprehensive Metabolic Panel": "A group of 14 blood tests that gives your doctor important " +
		"information about your body's chemical balance, blood sugar, and how well " +
		"your kidneys and liver are working. It is often abbreviated as CMP.",
	"Hemoglobin": "The protein in red blood cells that carries oxygen. Low hemoglobin " +
		"is called anemia and can cause tiredness.",
	"Creatinine": "A waste product filtered out by the kidneys. A high creatinine level " +
		"can be a sign the kidneys are not working at full strength.",
}
