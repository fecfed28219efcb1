package i18n

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "Android Template Generator",
		KeyAppSubtitle:       "Pick a template, customize it and download a ready-to-build project",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyAutoReveal:        "Show project in folder after download",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",

		KeyChooseTemplate:    "Choose a template",
		KeySelect:            "Select",
		KeySelected:          "Selected",
		KeyUnavailable:       "Not available yet",
		KeyProjectStructure:  "Project Structure",
		KeyNoTemplateChosen:  "Select a template to preview its structure",
		KeyGenerateProject:   "Generate Project",
		KeyCustomizeTitle:    "Customize Your Project",
		KeyProjectName:       "Project Name",
		KeyPackageName:       "Package Name",
		KeyNetworkLibrary:    "Network Library",
		KeyDILibrary:         "Dependency Injection",
		KeyAnnotationProc:    "Annotation Processing",
		KeyFeatures:          "Features",
		KeyAlwaysIncluded:    "always included",
		KeyDownloadProject:   "Download Project",
		KeyGenerating:        "Generating...",
		KeyTryAgain:          "Try Again",
		KeyRetrying:          "Retrying...",
		KeyRetryAttempt:      "Retry attempt %d/%d",
		KeyProjectSaved:      "Project saved to %s",
		KeyShowInFolder:      "Show in folder",
		KeyErrorOpeningFile:  "Error opening file",
		KeyRetryPrompt:       "Try again?",
		KeyRetriesExhausted:  "Maximum number of retries reached",
		KeyPleaseChooseFirst: "Please choose a template first.",

		KeyErrNetwork:         "Unable to connect to the template generation service. Please check your internet connection and try again.",
		KeyErrInvalidBlob:     "The generated template file is invalid. Please try again.",
		KeyErrInvalidFilename: "There was an issue with the generated file name. Please try again.",
		KeyErrUnsupported:     "Your system doesn't support file downloads. Please check the download directory in Settings.",
		KeyErrDownload:        "Failed to download the generated template. Please try again.",
		KeyErrGeneration:      "An unexpected error occurred while generating your template.",
		KeyErrUnexpected:      "An unexpected error occurred. Please try again or contact support if the problem persists.",
	}

	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:          "Генератор шаблонов Android",
		KeyAppSubtitle:       "Выберите шаблон, настройте его и скачайте готовый проект",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAutoReveal:        "Показывать проект в папке после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",

		KeyChooseTemplate:    "Выберите шаблон",
		KeySelect:            "Выбрать",
		KeySelected:          "Выбран",
		KeyUnavailable:       "Пока недоступен",
		KeyProjectStructure:  "Структура проекта",
		KeyNoTemplateChosen:  "Выберите шаблон, чтобы увидеть его структуру",
		KeyGenerateProject:   "Создать проект",
		KeyCustomizeTitle:    "Настройте проект",
		KeyProjectName:       "Имя проекта",
		KeyPackageName:       "Имя пакета",
		KeyNetworkLibrary:    "Сетевая библиотека",
		KeyDILibrary:         "Внедрение зависимостей",
		KeyAnnotationProc:    "Обработка аннотаций",
		KeyFeatures:          "Возможности",
		KeyAlwaysIncluded:    "всегда включено",
		KeyDownloadProject:   "Скачать проект",
		KeyGenerating:        "Генерация...",
		KeyTryAgain:          "Повторить",
		KeyRetrying:          "Повтор...",
		KeyRetryAttempt:      "Попытка %d/%d",
		KeyProjectSaved:      "Проект сохранён в %s",
		KeyShowInFolder:      "Показать в папке",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyRetryPrompt:       "Повторить?",
		KeyRetriesExhausted:  "Достигнуто максимальное число попыток",
		KeyPleaseChooseFirst: "Сначала выберите шаблон.",

		KeyErrNetwork:         "Не удалось подключиться к сервису генерации шаблонов. Проверьте подключение к интернету и повторите попытку.",
		KeyErrInvalidBlob:     "Сгенерированный файл шаблона повреждён. Повторите попытку.",
		KeyErrInvalidFilename: "Проблема с именем сгенерированного файла. Повторите попытку.",
		KeyErrUnsupported:     "Система не поддерживает загрузку файлов. Проверьте папку загрузки в настройках.",
		KeyErrDownload:        "Не удалось скачать сгенерированный шаблон. Повторите попытку.",
		KeyErrGeneration:      "При генерации шаблона произошла непредвиденная ошибка.",
		KeyErrUnexpected:      "Произошла непредвиденная ошибка. Повторите попытку или обратитесь в поддержку, если проблема сохраняется.",
	}

	l.texts[LangPortug] = map[string]string{
		KeyAppTitle:          "Gerador de Templates Android",
		KeyAppSubtitle:       "Escolha um template, personalize e baixe um projeto pronto para compilar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyAutoReveal:        "Mostrar projeto na pasta após o download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",

		KeyChooseTemplate:    "Escolha um template",
		KeySelect:            "Selecionar",
		KeySelected:          "Selecionado",
		KeyUnavailable:       "Ainda não disponível",
		KeyProjectStructure:  "Estrutura do Projeto",
		KeyNoTemplateChosen:  "Selecione um template para ver sua estrutura",
		KeyGenerateProject:   "Gerar Projeto",
		KeyCustomizeTitle:    "Personalize Seu Projeto",
		KeyProjectName:       "Nome do Projeto",
		KeyPackageName:       "Nome do Pacote",
		KeyNetworkLibrary:    "Biblioteca de Rede",
		KeyDILibrary:         "Injeção de Dependências",
		KeyAnnotationProc:    "Processamento de Anotações",
		KeyFeatures:          "Recursos",
		KeyAlwaysIncluded:    "sempre incluído",
		KeyDownloadProject:   "Baixar Projeto",
		KeyGenerating:        "Gerando...",
		KeyTryAgain:          "Tentar Novamente",
		KeyRetrying:          "Tentando novamente...",
		KeyRetryAttempt:      "Tentativa %d/%d",
		KeyProjectSaved:      "Projeto salvo em %s",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyRetryPrompt:       "Tentar novamente?",
		KeyRetriesExhausted:  "Número máximo de tentativas atingido",
		KeyPleaseChooseFirst: "Escolha um template primeiro.",

		KeyErrNetwork:         "Não foi possível conectar ao serviço de geração de templates. Verifique sua conexão com a internet e tente novamente.",
		KeyErrInvalidBlob:     "O arquivo de template gerado é inválido. Tente novamente.",
		KeyErrInvalidFilename: "Houve um problema com o nome do arquivo gerado. Tente novamente.",
		KeyErrUnsupported:     "Seu sistema não suporta downloads de arquivos. Verifique o diretório de download nas Configurações.",
		KeyErrDownload:        "Falha ao baixar o template gerado. Tente novamente.",
		KeyErrGeneration:      "Ocorreu um erro inesperado ao gerar seu template.",
		KeyErrUnexpected:      "Ocorreu um erro inesperado. Tente novamente ou contate o suporte se o problema persistir.",
	}
}
