package i18n

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyAppSubtitle       = "app_subtitle"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"

	KeyChooseTemplate    = "choose_template"
	KeySelect            = "select"
	KeySelected          = "selected"
	KeyUnavailable       = "unavailable"
	KeyProjectStructure  = "project_structure"
	KeyNoTemplateChosen  = "no_template_chosen"
	KeyGenerateProject   = "generate_project"
	KeyCustomizeTitle    = "customize_title"
	KeyProjectName       = "project_name"
	KeyPackageName       = "package_name"
	KeyNetworkLibrary    = "network_library"
	KeyDILibrary         = "di_library"
	KeyAnnotationProc    = "annotation_processing"
	KeyFeatures          = "features"
	KeyAlwaysIncluded    = "always_included"
	KeyDownloadProject   = "download_project"
	KeyGenerating        = "generating"
	KeyTryAgain          = "try_again"
	KeyRetrying          = "retrying"
	KeyRetryAttempt      = "retry_attempt"
	KeyProjectSaved      = "project_saved"
	KeyShowInFolder      = "show_in_folder"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyRetryPrompt       = "retry_prompt"
	KeyRetriesExhausted  = "retries_exhausted"
	KeyPleaseChooseFirst = "please_choose_first"

	KeyErrNetwork         = "err_network"
	KeyErrInvalidBlob     = "err_invalid_blob"
	KeyErrInvalidFilename = "err_invalid_filename"
	KeyErrUnsupported     = "err_unsupported"
	KeyErrDownload        = "err_download"
	KeyErrGeneration      = "err_generation"
	KeyErrUnexpected      = "err_unexpected"
)
