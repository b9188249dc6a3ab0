package catalog

// Metric names understood by the stats aggregator.
const (
	MetricTotalNotes        = "total_notes"
	MetricTotalWords        = "total_words"
	MetricTotalTags         = "total_tags"
	MetricUniqueTags        = "unique_tags"
	MetricMaxNoteWords      = "max_note_words"
	MetricMaxNoteTags       = "max_note_tags"
	MetricTotalTasks        = "total_tasks"
	MetricCompletedTasks    = "completed_tasks"
	MetricTotalSessions     = "total_focus_sessions"
	MetricTotalFocusMinutes = "total_focus_minutes"
	MetricMaxSessionMinutes = "max_session_minutes"
	MetricNoteStreak        = "note_streak"
	MetricTaskStreak        = "task_streak"
	MetricFocusStreak       = "focus_streak"
	MetricActivityStreak    = "activity_streak"
)

// All contains every built-in achievement definition in display order.
var All = []AchievementDefinition{
	// ====== NOTES ======
	{ID: "note_first", Name: "First Words", Description: "Write your first note", Tier: TierCommon, Category: CategoryNotes, Color: "#8BC34A", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalNotes, Target: 1}},
	{ID: "note_five", Name: "Getting Inked", Description: "Write 5 notes", Tier: TierCommon, Category: CategoryNotes, Color: "#8BC34A", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalNotes, Target: 5}},
	{ID: "note_scribe", Name: "Scribe", Description: "Write 25 notes", Tier: TierUncommon, Category: CategoryNotes, Color: "#4CAF50", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalNotes, Target: 25}},
	{ID: "note_chronicler", Name: "Chronicler", Description: "Write 100 notes", Tier: TierRare, Category: CategoryNotes, Color: "#2E7D32", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalNotes, Target: 100}},
	{ID: "note_librarian", Name: "Librarian", Description: "Write 500 notes", Tier: TierLegendary, Category: CategoryNotes, Color: "#FFD700", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalNotes, Target: 500}},
	{ID: "words_thousand", Name: "Wordsmith", Description: "Write 1,000 words in total", Tier: TierCommon, Category: CategoryNotes, Color: "#90CAF9", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalWords, Target: 1000}},
	{ID: "words_ten_thousand", Name: "Storyteller", Description: "Write 10,000 words in total", Tier: TierUncommon, Category: CategoryNotes, Color: "#64B5F6", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalWords, Target: 10000}},
	{ID: "words_novelist", Name: "Novelist", Description: "Write 50,000 words in total", Tier: TierLegendary, Category: CategoryNotes, Color: "#FFD700", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalWords, Target: 50000}},
	{ID: "note_epic", Name: "Epic Entry", Description: "Write a single note of 1,000+ words", Tier: TierRare, Category: CategoryNotes, Color: "#7E57C2", Requirement: Requirement{Kind: KindCount, Metric: MetricMaxNoteWords, Target: 1000}},
	{ID: "note_tagger", Name: "Tag Collector", Description: "Use 10 distinct tags", Tier: TierCommon, Category: CategoryNotes, Color: "#FFB74D", Requirement: Requirement{Kind: KindCount, Metric: MetricUniqueTags, Target: 10}},
	{ID: "note_taxonomist", Name: "Taxonomist", Description: "Put 5 tags on a single note", Tier: TierUncommon, Category: CategoryNotes, Color: "#FFA726", Requirement: Requirement{Kind: KindCount, Metric: MetricMaxNoteTags, Target: 5}},
	{ID: "note_streak_week", Name: "Daily Diarist", Description: "Write notes 7 days in a row", Tier: TierUncommon, Category: CategoryNotes, Color: "#EF5350", Requirement: Requirement{Kind: KindStreak, Metric: MetricNoteStreak, Target: 7}},
	{ID: "note_streak_month", Name: "Habitual Author", Description: "Write notes 30 days in a row", Tier: TierRare, Category: CategoryNotes, Color: "#E53935", Requirement: Requirement{Kind: KindStreak, Metric: MetricNoteStreak, Target: 30}},
	{ID: "note_streak_century", Name: "Unbroken Quill", Description: "Write notes 100 days in a row", Tier: TierLegendary, Category: CategoryNotes, Color: "#FFD700", Requirement: Requirement{Kind: KindStreak, Metric: MetricNoteStreak, Target: 100}},
	{ID: "note_night_owl", Name: "Night Owl", Description: "Open the journal between 10 PM and 2 AM", Tier: TierCommon, Category: CategoryNotes, Color: "#5C6BC0", Requirement: Requirement{Kind: KindTimeRange, StartHour: 22, EndHour: 2}},
	{ID: "note_early_bird", Name: "Early Bird", Description: "Open the journal before 6 AM", Tier: TierCommon, Category: CategoryNotes, Color: "#FFCA28", Requirement: Requirement{Kind: KindTimeBefore, EndHour: 6}},
	{ID: "note_evening_writer", Name: "Evening Writer", Description: "Open the journal after 8 PM", Tier: TierCommon, Category: CategoryNotes, Color: "#AB47BC", Requirement: Requirement{Kind: KindTimeAfter, StartHour: 20}},

	// ====== TASKS ======
	{ID: "task_first", Name: "Checked Off", Description: "Complete your first task", Tier: TierCommon, Category: CategoryTasks, Color: "#4DB6AC", Requirement: Requirement{Kind: KindCount, Metric: MetricCompletedTasks, Target: 1}},
	{ID: "task_ten", Name: "List Keeper", Description: "Complete 10 tasks", Tier: TierCommon, Category: CategoryTasks, Color: "#4DB6AC", Requirement: Requirement{Kind: KindCount, Metric: MetricCompletedTasks, Target: 10}},
	{ID: "task_fifty", Name: "Task Tactician", Description: "Complete 50 tasks", Tier: TierUncommon, Category: CategoryTasks, Color: "#26A69A", Requirement: Requirement{Kind: KindCount, Metric: MetricCompletedTasks, Target: 50}},
	{ID: "task_two_hundred", Name: "Done and Dusted", Description: "Complete 200 tasks", Tier: TierRare, Category: CategoryTasks, Color: "#00897B", Requirement: Requirement{Kind: KindCount, Metric: MetricCompletedTasks, Target: 200}},
	{ID: "task_thousand", Name: "Executioner", Description: "Complete 1,000 tasks", Tier: TierLegendary, Category: CategoryTasks, Color: "#FFD700", Requirement: Requirement{Kind: KindCount, Metric: MetricCompletedTasks, Target: 1000}},
	{ID: "task_half_done", Name: "Halfway There", Description: "Complete half of everything you plan", Tier: TierCommon, Category: CategoryTasks, Color: "#81C784", Requirement: Requirement{Kind: KindRatio, Numerator: MetricCompletedTasks, Denominator: MetricTotalTasks, TargetRatio: 0.5}},
	{ID: "task_finisher", Name: "Finisher", Description: "Complete 80% of everything you plan", Tier: TierRare, Category: CategoryTasks, Color: "#388E3C", Requirement: Requirement{Kind: KindRatio, Numerator: MetricCompletedTasks, Denominator: MetricTotalTasks, TargetRatio: 0.8}},
	{ID: "task_streak_week", Name: "Momentum", Description: "Complete tasks 7 days in a row", Tier: TierUncommon, Category: CategoryTasks, Color: "#FF7043", Requirement: Requirement{Kind: KindStreak, Metric: MetricTaskStreak, Target: 7}},
	{ID: "task_streak_month", Name: "Relentless", Description: "Complete tasks 30 days in a row", Tier: TierRare, Category: CategoryTasks, Color: "#F4511E", Requirement: Requirement{Kind: KindStreak, Metric: MetricTaskStreak, Target: 30}},

	// ====== FOCUS ======
	{ID: "focus_first", Name: "Tuned In", Description: "Log your first focus session", Tier: TierCommon, Category: CategoryFocus, Color: "#BA68C8", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalSessions, Target: 1}},
	{ID: "focus_ten", Name: "Settling In", Description: "Log 10 focus sessions", Tier: TierCommon, Category: CategoryFocus, Color: "#BA68C8", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalSessions, Target: 10}},
	{ID: "focus_hundred", Name: "Deep Diver", Description: "Log 100 focus sessions", Tier: TierRare, Category: CategoryFocus, Color: "#8E24AA", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalSessions, Target: 100}},
	{ID: "focus_hour_total", Name: "First Hour", Description: "Accumulate 60 minutes of focus time", Tier: TierCommon, Category: CategoryFocus, Color: "#9575CD", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalFocusMinutes, Target: 60}},
	{ID: "focus_day_total", Name: "Around the Clock", Description: "Accumulate 24 hours of focus time", Tier: TierRare, Category: CategoryFocus, Color: "#5E35B1", Requirement: Requirement{Kind: KindCount, Metric: MetricTotalFocusMinutes, Target: 1440}},
	{ID: "focus_marathon", Name: "Marathoner", Description: "Hold a single 2-hour focus session", Tier: TierRare, Category: CategoryFocus, Color: "#512DA8", Requirement: Requirement{Kind: KindCount, Metric: MetricMaxSessionMinutes, Target: 120}},
	{ID: "focus_pomodoros", Name: "Tomato Farmer", Description: "Log 25 sessions of 25-30 minutes", Tier: TierUncommon, Category: CategoryFocus, Color: "#E57373", Requirement: Requirement{Kind: KindDurationRange, MinMinutes: 25, MaxMinutes: 30, Target: 25}},
	{ID: "focus_sprints", Name: "Sprinter", Description: "Log 10 short sessions of 5-15 minutes", Tier: TierCommon, Category: CategoryFocus, Color: "#F06292", Requirement: Requirement{Kind: KindDurationRange, MinMinutes: 5, MaxMinutes: 15, Target: 10}},
	{ID: "focus_work_hours", Name: "Study Buddy", Description: "Spend 10 hours focused on study", Tier: TierUncommon, Category: CategoryFocus, Color: "#4FC3F7", Requirement: Requirement{Kind: KindCategoryMetric, Category: "study", Target: 600}},
	{ID: "focus_creative_hours", Name: "Creative Current", Description: "Spend 10 hours focused on creative work", Tier: TierUncommon, Category: CategoryFocus, Color: "#4DD0E1", Requirement: Requirement{Kind: KindCategoryMetric, Category: "creative", Target: 600}},
	{ID: "focus_streak_week", Name: "Locked In", Description: "Focus 7 days in a row", Tier: TierUncommon, Category: CategoryFocus, Color: "#7986CB", Requirement: Requirement{Kind: KindStreak, Metric: MetricFocusStreak, Target: 7}},

	// ====== COMBO ======
	{ID: "combo_balanced", Name: "Balanced Mind", Description: "Write 10 notes and complete 10 tasks", Tier: TierUncommon, Category: CategoryCombo, Color: "#A1887F", Requirement: Requirement{Kind: KindCombo, All: []Requirement{{Kind: KindCount, Metric: MetricTotalNotes, Target: 10}, {Kind: KindCount, Metric: MetricCompletedTasks, Target: 10}}}},
	{ID: "combo_triathlete", Name: "Triathlete", Description: "Write 25 notes, complete 25 tasks, and log 25 focus sessions", Tier: TierRare, Category: CategoryCombo, Color: "#8D6E63", Requirement: Requirement{Kind: KindCombo, All: []Requirement{{Kind: KindCount, Metric: MetricTotalNotes, Target: 25}, {Kind: KindCount, Metric: MetricCompletedTasks, Target: 25}, {Kind: KindCount, Metric: MetricTotalSessions, Target: 25}}}},
	{ID: "combo_all_streaks", Name: "Perfect Week", Description: "Keep note, task, and focus streaks alive for 7 days", Tier: TierLegendary, Category: CategoryCombo, Color: "#FFD700", Requirement: Requirement{Kind: KindCombo, All: []Requirement{{Kind: KindStreak, Metric: MetricNoteStreak, Target: 7}, {Kind: KindStreak, Metric: MetricTaskStreak, Target: 7}, {Kind: KindStreak, Metric: MetricFocusStreak, Target: 7}}}},

	// ====== META ======
	{ID: "meta_collector", Name: "Collector", Description: "Unlock 5 achievements", Tier: TierCommon, Category: CategoryMeta, Color: "#B0BEC5", Requirement: Requirement{Kind: KindAchievementCount, Target: 5}},
	{ID: "meta_hoarder", Name: "Trophy Hoarder", Description: "Unlock 15 achievements", Tier: TierUncommon, Category: CategoryMeta, Color: "#90A4AE", Requirement: Requirement{Kind: KindAchievementCount, Target: 15}},
	{ID: "meta_quarter", Name: "Getting Serious", Description: "Unlock a quarter of all achievements", Tier: TierUncommon, Category: CategoryMeta, Color: "#78909C", Requirement: Requirement{Kind: KindCompletionPercentage, Target: 25}},
	{ID: "meta_half", Name: "Halfway Hall", Description: "Unlock half of all achievements", Tier: TierRare, Category: CategoryMeta, Color: "#607D8B", Requirement: Requirement{Kind: KindCompletionPercentage, Target: 50}},
	{ID: "meta_completionist", Name: "Completionist", Description: "Unlock 90% of all achievements", Tier: TierLegendary, Category: CategoryMeta, Color: "#FFD700", Requirement: Requirement{Kind: KindCompletionPercentage, Target: 90}},
}
