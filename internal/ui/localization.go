package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyIntro              = "intro"
	KeyEnterURL           = "enter_url"
	KeyStartDownload      = "start_download"
	KeySaveVideo          = "save_video"
	KeyDownloadSucceeded  = "download_succeeded"
	KeySavedTo            = "saved_to"
	KeyErrorSavingFile    = "error_saving_file"
	KeyInvalidURL         = "invalid_url"
	KeyAlreadyDownloading = "already_downloading"
	KeySettings           = "settings"
	KeySettingsSaved      = "settings_saved"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyFormat             = "format"
	KeyMergeFormat        = "merge_format"
	KeyEngine             = "engine"
	KeyRevealAfterSave    = "reveal_after_save"
	KeySave               = "save"
	KeyCancel             = "cancel"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key, falling back to English
// and finally to the key itself
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           IconTitle + " YouTube High-Quality Video Downloader",
		KeyIntro:              "Paste a YouTube link below to download in best available quality:",
		KeyEnterURL:           IconLink + " YouTube URL",
		KeyStartDownload:      IconStart + " Start Download",
		KeySaveVideo:          IconSave + " Save Video to Your Device",
		KeyDownloadSucceeded:  IconSuccess + " Video downloaded successfully!",
		KeySavedTo:            "Saved to %s",
		KeyErrorSavingFile:    "Error saving file",
		KeyInvalidURL:         "Invalid URL",
		KeyAlreadyDownloading: "A download is already running",
		KeySettings:           "Settings",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyFormat:             "Format Selector",
		KeyMergeFormat:        "Merge Container",
		KeyEngine:             "Extraction Engine",
		KeyRevealAfterSave:    "Reveal file after saving",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           IconTitle + " Загрузчик видео YouTube в высоком качестве",
		KeyIntro:              "Вставьте ссылку YouTube ниже, чтобы скачать в лучшем доступном качестве:",
		KeyEnterURL:           IconLink + " URL YouTube",
		KeyStartDownload:      IconStart + " Начать загрузку",
		KeySaveVideo:          IconSave + " Сохранить видео на устройство",
		KeyDownloadSucceeded:  IconSuccess + " Видео успешно загружено!",
		KeySavedTo:            "Сохранено в %s",
		KeyErrorSavingFile:    "Ошибка сохранения файла",
		KeyInvalidURL:         "Неверный URL",
		KeyAlreadyDownloading: "Загрузка уже выполняется",
		KeySettings:           "Настройки",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyFormat:             "Селектор формата",
		KeyMergeFormat:        "Контейнер объединения",
		KeyEngine:             "Движок извлечения",
		KeyRevealAfterSave:    "Показать файл после сохранения",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           IconTitle + " Downloader de Vídeos do YouTube em Alta Qualidade",
		KeyIntro:              "Cole um link do YouTube abaixo para baixar na melhor qualidade disponível:",
		KeyEnterURL:           IconLink + " URL do YouTube",
		KeyStartDownload:      IconStart + " Iniciar Download",
		KeySaveVideo:          IconSave + " Salvar Vídeo no Seu Dispositivo",
		KeyDownloadSucceeded:  IconSuccess + " Vídeo baixado com sucesso!",
		KeySavedTo:            "Salvo em %s",
		KeyErrorSavingFile:    "Erro ao salvar arquivo",
		KeyInvalidURL:         "URL inválida",
		KeyAlreadyDownloading: "Um download já está em andamento",
		KeySettings:           "Configurações",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyFormat:             "Seletor de Formato",
		KeyMergeFormat:        "Contêiner de Mesclagem",
		KeyEngine:             "Mecanismo de Extração",
		KeyRevealAfterSave:    "Mostrar arquivo após salvar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
	}
}
