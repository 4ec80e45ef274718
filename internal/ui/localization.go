package ui

// Localization manages UI chrome translations. Texts arriving from the
// services are fixed product strings and stay untranslated.
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyLoginTitle        = "login_title"
	KeySignupTitle       = "signup_title"
	KeyUsername          = "username"
	KeyPassword          = "password"
	KeyLoginButton       = "login_button"
	KeySignupButton      = "signup_button"
	KeyNoAccount         = "no_account"
	KeyHaveAccount       = "have_account"
	KeyVerifyingSession  = "verifying_session"
	KeyMyVideos          = "my_videos"
	KeyUpload            = "upload"
	KeyPlay              = "play"
	KeyDownload          = "download"
	KeyDelete            = "delete"
	KeySignOut           = "sign_out"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyAuthServerURL     = "auth_server_url"
	KeyStorageServerURL  = "storage_server_url"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyStorageUsed       = "storage_used"
	KeyStorageAvailable  = "storage_available"
	KeyNoVideosYet       = "no_videos_yet"
	KeyDeleteTitle       = "delete_title"
	KeyDeleteQuestion    = "delete_question"
	KeyDownloadSaved     = "download_saved"
	KeyViewGrid          = "view_grid"
	KeyViewList          = "view_list"
	KeyFillBothFields    = "fill_both_fields"
	KeyCompressUploads   = "compress_uploads"
	KeyCompressing       = "compressing"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "KotKit",
		KeyLoginTitle:        "Login",
		KeySignupTitle:       "Sign Up",
		KeyUsername:          "Username",
		KeyPassword:          "Password",
		KeyLoginButton:       "Login",
		KeySignupButton:      "Sign Up",
		KeyNoAccount:         "Don't have an account? Sign Up",
		KeyHaveAccount:       "Already have an account? Login",
		KeyVerifyingSession:  "Checking your session...",
		KeyMyVideos:          "My Videos",
		KeyUpload:            "Upload Video",
		KeyPlay:              "Play",
		KeyDownload:          "Download",
		KeyDelete:            "Delete",
		KeySignOut:           "Sign Out",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyAuthServerURL:     "Auth Server URL",
		KeyStorageServerURL:  "Storage Server URL",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyStorageUsed:       "Used",
		KeyStorageAvailable:  "Available",
		KeyNoVideosYet:       "No videos yet. Upload your first one!",
		KeyDeleteTitle:       "Delete Video",
		KeyDeleteQuestion:    "Delete this video? This cannot be undone.",
		KeyDownloadSaved:     "Saved to",
		KeyViewGrid:          "Grid",
		KeyViewList:          "List",
		KeyFillBothFields:    "Please enter both username and password.",
		KeyCompressUploads:   "Compress videos before upload",
		KeyCompressing:       "Compressing...",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "KotKit",
		KeyLoginTitle:        "Вход",
		KeySignupTitle:       "Регистрация",
		KeyUsername:          "Имя пользователя",
		KeyPassword:          "Пароль",
		KeyLoginButton:       "Войти",
		KeySignupButton:      "Зарегистрироваться",
		KeyNoAccount:         "Нет аккаунта? Зарегистрируйтесь",
		KeyHaveAccount:       "Уже есть аккаунт? Войдите",
		KeyVerifyingSession:  "Проверка сессии...",
		KeyMyVideos:          "Мои видео",
		KeyUpload:            "Загрузить видео",
		KeyPlay:              "Воспроизвести",
		KeyDownload:          "Скачать",
		KeyDelete:            "Удалить",
		KeySignOut:           "Выйти",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAuthServerURL:     "URL сервера авторизации",
		KeyStorageServerURL:  "URL сервера хранилища",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyStorageUsed:       "Занято",
		KeyStorageAvailable:  "Свободно",
		KeyNoVideosYet:       "Видео пока нет. Загрузите первое!",
		KeyDeleteTitle:       "Удалить видео",
		KeyDeleteQuestion:    "Удалить это видео? Отменить будет нельзя.",
		KeyDownloadSaved:     "Сохранено в",
		KeyViewGrid:          "Сетка",
		KeyViewList:          "Список",
		KeyFillBothFields:    "Введите имя пользователя и пароль.",
		KeyCompressUploads:   "Сжимать видео перед загрузкой",
		KeyCompressing:       "Сжатие...",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "KotKit",
		KeyLoginTitle:        "Entrar",
		KeySignupTitle:       "Cadastro",
		KeyUsername:          "Nome de usuário",
		KeyPassword:          "Senha",
		KeyLoginButton:       "Entrar",
		KeySignupButton:      "Cadastrar",
		KeyNoAccount:         "Não tem uma conta? Cadastre-se",
		KeyHaveAccount:       "Já tem uma conta? Entre",
		KeyVerifyingSession:  "Verificando sua sessão...",
		KeyMyVideos:          "Meus Vídeos",
		KeyUpload:            "Enviar Vídeo",
		KeyPlay:              "Reproduzir",
		KeyDownload:          "Baixar",
		KeyDelete:            "Excluir",
		KeySignOut:           "Sair",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyAuthServerURL:     "URL do Servidor de Autenticação",
		KeyStorageServerURL:  "URL do Servidor de Armazenamento",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyStorageUsed:       "Usado",
		KeyStorageAvailable:  "Disponível",
		KeyNoVideosYet:       "Nenhum vídeo ainda. Envie o primeiro!",
		KeyDeleteTitle:       "Excluir Vídeo",
		KeyDeleteQuestion:    "Excluir este vídeo? Isso não pode ser desfeito.",
		KeyDownloadSaved:     "Salvo em",
		KeyViewGrid:          "Grade",
		KeyViewList:          "Lista",
		KeyFillBothFields:    "Informe nome de usuário e senha.",
		KeyCompressUploads:   "Comprimir vídeos antes de enviar",
		KeyCompressing:       "Comprimindo...",
	}
}
