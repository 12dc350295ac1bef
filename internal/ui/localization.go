package ui

import (
	"fmt"
	"time"

	"github.com/ytget/gantt-planner/internal/timeline"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	months          map[string][12]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyView               = "view"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyOpenProject        = "open_project"
	KeyReloadProject      = "reload_project"
	KeyUseSample          = "use_sample"
	KeyEditProjectFile    = "edit_project_file"
	KeyToday              = "today"
	KeyZoomIn             = "zoom_in"
	KeyZoomOut            = "zoom_out"
	KeyZoomReset          = "zoom_reset"
	KeyScaleUp            = "scale_up"
	KeyScaleDown          = "scale_down"
	KeyProjectFile        = "project_file"
	KeyHolidayRegion      = "holiday_region"
	KeyTimelineScale      = "timeline_scale"
	KeyGanttZoom          = "gantt_zoom"
	KeySnapToMonths       = "snap_to_months"
	KeyTransitionMs       = "transition_ms"
	KeyNone               = "none"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyProjectLoaded      = "project_loaded"
	KeyErrorLoadingFile   = "error_loading_file"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyUsingSample        = "using_sample"
	KeyTaskDates          = "task_dates"
	KeyTaskProgress       = "task_progress"
	KeyTaskCount          = "task_count"
	KeyZoomLabel          = "zoom_label"
	KeyRestartForSettings = "restart_for_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		months:          make(map[string][12]string),
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

// Format returns the localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// MonthLabel returns the month header text in the current language
func (l *Localization) MonthLabel(year int, month time.Month) string {
	names, ok := l.months[l.currentLanguage]
	if !ok || month < time.January || month > time.December {
		return timeline.EnglishMonths.MonthLabel(year, month)
	}
	return fmt.Sprintf("%s %d", names[month-1], year)
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

var _ timeline.MonthLabeler = (*Localization)(nil)

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Gantt Planner",
		KeyFile:               "File",
		KeyView:               "View",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyOpenProject:        "Open Project...",
		KeyReloadProject:      "Reload Project",
		KeyUseSample:          "Use Sample Project",
		KeyEditProjectFile:    "Edit Project File",
		KeyToday:              "Today",
		KeyZoomIn:             "Zoom In",
		KeyZoomOut:            "Zoom Out",
		KeyZoomReset:          "Reset Zoom",
		KeyScaleUp:            "Wider Days",
		KeyScaleDown:          "Narrower Days",
		KeyProjectFile:        "Project File",
		KeyHolidayRegion:      "Holiday Region",
		KeyTimelineScale:      "Timeline Scale",
		KeyGanttZoom:          "Chart Zoom",
		KeySnapToMonths:       "Snap to months",
		KeyTransitionMs:       "Animation (ms)",
		KeyNone:               "None",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyProjectLoaded:      "Loaded %s (%d tasks)",
		KeyErrorLoadingFile:   "Error loading project",
		KeyErrorOpeningFile:   "Error opening file",
		KeyUsingSample:        "Using the sample project",
		KeyTaskDates:          "%s - %s",
		KeyTaskProgress:       "Progress: %d%%",
		KeyTaskCount:          "%d tasks",
		KeyZoomLabel:          "Zoom %.0f%%",
		KeyRestartForSettings: "Some changes apply after restart",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Планировщик Ганта",
		KeyFile:               "Файл",
		KeyView:               "Вид",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyOpenProject:        "Открыть проект...",
		KeyReloadProject:      "Перезагрузить проект",
		KeyUseSample:          "Пример проекта",
		KeyEditProjectFile:    "Редактировать файл проекта",
		KeyToday:              "Сегодня",
		KeyZoomIn:             "Увеличить",
		KeyZoomOut:            "Уменьшить",
		KeyZoomReset:          "Сбросить масштаб",
		KeyScaleUp:            "Шире дни",
		KeyScaleDown:          "Уже дни",
		KeyProjectFile:        "Файл проекта",
		KeyHolidayRegion:      "Регион праздников",
		KeyTimelineScale:      "Масштаб шкалы",
		KeyGanttZoom:          "Масштаб диаграммы",
		KeySnapToMonths:       "Привязка к месяцам",
		KeyTransitionMs:       "Анимация (мс)",
		KeyNone:               "Нет",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyProjectLoaded:      "Загружен %s (задач: %d)",
		KeyErrorLoadingFile:   "Ошибка загрузки проекта",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyUsingSample:        "Используется пример проекта",
		KeyTaskDates:          "%s - %s",
		KeyTaskProgress:       "Выполнено: %d%%",
		KeyTaskCount:          "Задач: %d",
		KeyZoomLabel:          "Масштаб %.0f%%",
		KeyRestartForSettings: "Часть изменений вступит в силу после перезапуска",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Planejador Gantt",
		KeyFile:               "Arquivo",
		KeyView:               "Exibir",
		KeySettings:           "Configurações",
		KeyLanguage:           "Idioma",
		KeyOpenProject:        "Abrir Projeto...",
		KeyReloadProject:      "Recarregar Projeto",
		KeyUseSample:          "Projeto de Exemplo",
		KeyEditProjectFile:    "Editar Arquivo do Projeto",
		KeyToday:              "Hoje",
		KeyZoomIn:             "Aumentar Zoom",
		KeyZoomOut:            "Diminuir Zoom",
		KeyZoomReset:          "Redefinir Zoom",
		KeyScaleUp:            "Dias Mais Largos",
		KeyScaleDown:          "Dias Mais Estreitos",
		KeyProjectFile:        "Arquivo do Projeto",
		KeyHolidayRegion:      "Região de Feriados",
		KeyTimelineScale:      "Escala da Linha do Tempo",
		KeyGanttZoom:          "Zoom do Gráfico",
		KeySnapToMonths:       "Alinhar aos meses",
		KeyTransitionMs:       "Animação (ms)",
		KeyNone:               "Nenhuma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyProjectLoaded:      "%s carregado (%d tarefas)",
		KeyErrorLoadingFile:   "Erro ao carregar projeto",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyUsingSample:        "Usando o projeto de exemplo",
		KeyTaskDates:          "%s - %s",
		KeyTaskProgress:       "Progresso: %d%%",
		KeyTaskCount:          "%d tarefas",
		KeyZoomLabel:          "Zoom %.0f%%",
		KeyRestartForSettings: "Algumas alterações valem após reiniciar",
	}

	l.months["en"] = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	// Nominative forms, as used in calendar headers
	l.months["ru"] = [12]string{
		"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
	}
	l.months["pt"] = [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
}
