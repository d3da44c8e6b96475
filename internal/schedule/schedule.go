// Package schedule holds the static daily timetable the dispatcher walks.
// Entries are ordered by time of day and no two entries share a time.
package schedule

import "calobot/internal/models"

// entries is the working-day timetable. The 12:00 lunch slot additionally
// opens the interactive walk dialogue instead of arming a completion timer.
var entries = []models.ScheduleEntry{
	{Time: "09:00", Message: "🏢 Bắt đầu giờ làm việc. Tập trung cao độ nhé!", Activity: models.ActivitySittingWork, Duration: 60},
	{Time: "10:00", Message: "🧘‍♀️ Giải lao 5 phút! Đứng dậy, đi lại, giãn cơ nhẹ nào.", Activity: models.ActivityLightExercise, Duration: 5},
	{Time: "10:05", Message: "💪 Hết giờ giải lao, quay lại làm việc thôi!", Activity: models.ActivitySittingWork, Duration: 55},
	{Time: "11:00", Message: "🧘‍♀️ Giải lao 5 phút! Đứng dậy, đi lại, giãn cơ nhẹ nào.", Activity: models.ActivityLightExercise, Duration: 5},
	{Time: "11:05", Message: "💪 Hết giờ giải lao, quay lại làm việc thôi!", Activity: models.ActivitySittingWork, Duration: 55},
	{Time: "12:00", Message: "🍜 Giờ ăn trưa và nghỉ ngơi. Bạn nên tranh thủ chợp mắt 20-30 phút để nạp lại năng lượng nhé.", Activity: models.ActivityEating, Duration: 60, WalkPrompt: true},
	{Time: "13:00", Message: "🏢 Bắt đầu giờ làm việc buổi chiều. Cố lên nào!", Activity: models.ActivitySittingWork, Duration: 60},
	{Time: "14:00", Message: "🧘‍♀️ Giải lao 5 phút! Đứng dậy, đi lại, giãn cơ nhẹ nào.", Activity: models.ActivityLightExercise, Duration: 5},
	{Time: "14:05", Message: "💪 Hết giờ giải lao, quay lại làm việc thôi!", Activity: models.ActivitySittingWork, Duration: 55},
	{Time: "15:00", Message: "🧘‍♀️ Giải lao 5 phút! Đứng dậy, đi lại, giãn cơ nhẹ nào.", Activity: models.ActivityLightExercise, Duration: 5},
	{Time: "15:05", Message: "💪 Hết giờ giải lao, quay lại làm việc thôi!", Activity: models.ActivitySittingWork, Duration: 55},
	{Time: "16:00", Message: "🏢 Sắp hết giờ làm rồi, tập trung hoàn thành nốt công việc nhé!", Activity: models.ActivitySittingWork, Duration: 90},
	{Time: "17:30", Message: "🎉 Hết giờ làm! Về nhà thôi.", Activity: models.ActivityResting, Duration: 90},
	{Time: "19:00", Message: "🍽️ Bữa tối vui vẻ nhé.", Activity: models.ActivityEating, Duration: 30},
	{Time: "20:30", Message: "🏃‍♂️ Bắt đầu 10 phút tập thể dục tại nhà! Vận động giúp đốt mỡ và giãn cơ sau một ngày dài ngồi làm việc.", Activity: models.ActivityModerateExercise, Duration: 10},
	{Time: "22:30", Message: "🤸‍♀️ Đừng quên buổi tập thể dục cuối ngày nhé! 10 phút vận động nhẹ nhàng sẽ giúp bạn ngủ ngon hơn.", Activity: models.ActivityLightExercise, Duration: 10},
}

// Entries returns the full timetable in time order.
func Entries() []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry scheduled at the given HH:MM, if any.
func Lookup(hhmm string) (models.ScheduleEntry, bool) {
	for _, e := range entries {
		if e.Time == hhmm {
			return e, true
		}
	}
	return models.ScheduleEntry{}, false
}
