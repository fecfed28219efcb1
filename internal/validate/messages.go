package validate

// messages is a nested map of languages to fields to rules to text
var messages = map[string]map[Field]map[Rule]string{
	"en": {
		FieldProjectName: {
			RuleRequired:      "Project name is required",
			RuleInvalidFormat: "Project name must start with a letter and contain only letters, numbers, and underscores",
			RuleTooLong:       "Project name must be less than 50 characters",
		},
		FieldPackageName: {
			RuleRequired:      "Package name is required",
			RuleInvalidFormat: "Package name must be in format like 'com.example.myapp' (lowercase, dots, underscores only)",
			RuleTooLong:       "Package name must be less than 100 characters",
		},
	},
	"ru": {
		FieldProjectName: {
			RuleRequired:      "Укажите имя проекта",
			RuleInvalidFormat: "Имя проекта должно начинаться с буквы и содержать только буквы, цифры и подчёркивания",
			RuleTooLong:       "Имя проекта должно быть короче 50 символов",
		},
		FieldPackageName: {
			RuleRequired:      "Укажите имя пакета",
			RuleInvalidFormat: "Имя пакета должно быть вида 'com.example.myapp' (строчные буквы, точки, подчёркивания)",
			RuleTooLong:       "Имя пакета должно быть короче 100 символов",
		},
	},
	"pt": {
		FieldProjectName: {
			RuleRequired:      "O nome do projeto é obrigatório",
			RuleInvalidFormat: "O nome do projeto deve começar com uma letra e conter apenas letras, números e sublinhados",
			RuleTooLong:       "O nome do projeto deve ter menos de 50 caracteres",
		},
		FieldPackageName: {
			RuleRequired:      "O nome do pacote é obrigatório",
			RuleInvalidFormat: "O nome do pacote deve estar no formato 'com.example.myapp' (minúsculas, pontos, sublinhados)",
			RuleTooLong:       "O nome do pacote deve ter menos de 100 caracteres",
		},
	},
}

// Message returns the text for a field rule in the given language
func Message(lang string, field Field, rule Rule) string {
	if byField, ok := messages[lang]; ok {
		if msg, ok := byField[field][rule]; ok {
			return msg
		}
	}
	return messages["en"][field][rule]
}
