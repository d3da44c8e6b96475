// Package constant holds the command names and user-facing texts.
package constant

import "calobot/internal/models"

// Commands accepted by the bot.
const (
	CmdStartReminders = "/start_reminders"
	CmdStopReminders  = "/stop_reminders"
	CmdCalories       = "/calories"
	CmdProfile        = "/profile"
	CmdUpdate         = "/update"
	CmdWeight         = "/weight"
	CmdWalk           = "/walk"
)

// Walk dialogue limits.
const (
	WalkDefaultMinutes = 20
	WalkMinMinutes     = 1
	WalkMaxMinutes     = 120
)

// Immediate acknowledgements sent before the substantive reply.
const (
	MsgAckStart    = "✅ Đã nhận lệnh! Đang khởi tạo hệ thống theo dõi calo..."
	MsgAckStop     = "🛑 Đã nhận lệnh! Đang tắt hệ thống theo dõi..."
	MsgAckCalories = "📊 Đã nhận lệnh! Đang tính toán thống kê calo..."
	MsgAckProfile  = "👤 Đã nhận lệnh! Đang lấy thông tin cơ thể..."
	MsgAckUpdate   = "📝 Đã nhận lệnh! Đang mở menu cập nhật cân nặng..."
)

const (
	// MsgStarted is formatted with height, weight and BMR.
	MsgStarted = `Đã bật tính năng nhắc nhở theo lịch trình và đếm calo! 🤖

📊 Thông tin cơ thể của bạn:
📏 Chiều cao: %gcm
⚖️ Cân nặng: %gkg
🔥 BMR (calo cơ bản/ngày): %d calo

Tôi sẽ gửi thông báo cho bạn vào các mốc thời gian quan trọng và báo cáo calo tiêu thụ sau mỗi hoạt động.`

	MsgStopped = "Đã tắt tính năng nhắc nhở. Bạn sẽ không nhận được thông báo nữa."

	// MsgStoppedWithTotal is formatted with today's total.
	MsgStoppedWithTotal = "Đã tắt tính năng nhắc nhở.\n\n📊 Tổng calo tiêu thụ hôm nay: %d calo"

	MsgNeedStart = "Vui lòng bật tính năng nhắc nhở trước bằng lệnh /start_reminders"

	// MsgCaloriesStats is formatted with BMR, today's total, target and the
	// progress advisory.
	MsgCaloriesStats = `📊 Thống kê calo:

🔥 BMR (calo cơ bản/ngày): %d calo
📈 Calo tiêu thụ hôm nay: %d calo
🎯 Mục tiêu calo: %d calo

%s`

	// MsgProfileInfo is formatted with height, weight, BMR and target.
	MsgProfileInfo = `👤 Thông tin cơ thể:

📏 Chiều cao: %gcm
⚖️ Cân nặng: %gkg
🔥 BMR (calo cơ bản/ngày): %d calo
🎯 Mục tiêu calo tiêu thụ: %d calo/ngày

💡 BMR là lượng calo cơ thể tiêu thụ khi nghỉ ngơi hoàn toàn.`

	// MsgUpdateMenu is formatted with height, weight, age and sex label.
	MsgUpdateMenu = `📝 Cập nhật cân nặng:

Để cập nhật cân nặng, hãy gửi tin nhắn theo định dạng:
/weight [số]kg (ví dụ: /weight 85kg)

📊 Thông tin hiện tại:
📏 Chiều cao: %gcm
⚖️ Cân nặng: %gkg
🎂 Tuổi: %d tuổi
👤 Giới tính: %s

💡 Chỉ có thể cập nhật cân nặng vì các thông tin khác thường không thay đổi.`

	// MsgWeightUpdated is formatted with old weight, new weight, signed
	// delta, new BMR and new target.
	MsgWeightUpdated = `✅ Đã cập nhật cân nặng thành công!

⚖️ Cân nặng cũ: %gkg
⚖️ Cân nặng mới: %gkg
📊 Chênh lệch: %+.1fkg

🔥 BMR mới: %d calo/ngày
🎯 Mục tiêu calo mới: %d calo/ngày

💡 Thông tin mới sẽ được áp dụng cho các tính toán calo tiếp theo.`

	MsgWeightBadRange  = "❌ Cân nặng không hợp lệ! Vui lòng nhập số từ 1-500kg (ví dụ: /weight 85kg)"
	MsgWeightBadFormat = "❌ Định dạng không đúng! Vui lòng sử dụng: /weight [số]kg (ví dụ: /weight 85kg)"

	MsgHelp = `Chào bạn! Tôi là bot nhắc nhở lịch trình và đếm calo. 🤖

📋 Các lệnh có sẵn:
/start_reminders - Bật nhắc nhở và đếm calo
/stop_reminders - Tắt nhắc nhở
/calories - Xem thống kê calo hôm nay
/profile - Xem thông tin cơ thể
/update - Cập nhật cân nặng
/walk - Bắt đầu đi bộ 20 phút
/walk [số phút] - Đi bộ với thời lượng tùy chọn (1-120 phút)

🔥 Tôi sẽ giúp bạn theo dõi calo tiêu thụ cho từng hoạt động trong ngày!`

	MsgApology = "❌ Có lỗi xảy ra khi xử lý tin nhắn của bạn. Vui lòng thử lại."

	// MsgCalorieReport is formatted with activity name, minutes, calories,
	// average calories per minute and the activity tip.
	MsgCalorieReport = `📊 Báo cáo calo tiêu thụ:

⏱️ Hoạt động: %s
⏰ Thời gian: %d phút
🔥 Calo tiêu thụ: %d calo
⚡ Trung bình: %d calo/phút

💡 Mẹo: %s`

	// MsgDailyTotal is formatted with today's total and the progress advisory.
	MsgDailyTotal = "📈 Tổng calo tiêu thụ hôm nay: %d calo\n\n%s"
)

// Walk dialogue texts.
const (
	MsgWalkPrompt = `🚶 Bạn đã sẵn sàng đi bộ sau bữa trưa chưa?

Trả lời "có" để bắt đầu 20 phút, gửi số phút (1-120) để tự chọn thời lượng, hoặc "chưa" nếu muốn để sau.`

	// MsgWalkStarted is formatted with the walk duration in minutes.
	MsgWalkStarted = "🚶‍♂️ Bắt đầu đi bộ %d phút! Tôi sẽ gửi báo cáo calo khi bạn hoàn thành."

	MsgWalkDeclined = "Không sao! Khi nào muốn đi bộ, hãy dùng lệnh /walk hoặc /walk [số phút]."

	MsgWalkBadDuration      = "❌ Thời lượng không hợp lệ! Vui lòng nhập số phút từ 1 đến 120."
	MsgWalkAlreadyWalking   = "🚶 Bạn đang trong một buổi đi bộ rồi! Hãy hoàn thành trước khi bắt đầu buổi mới."
	MsgWalkAlreadyCompleted = "✅ Hôm nay bạn đã hoàn thành buổi đi bộ rồi. Hẹn gặp lại vào ngày mai!"
)

// Progress advisories by tier, from lowest to highest.
const (
	MsgProgressLow      = "🎯 Bạn cần vận động nhiều hơn để đạt mục tiêu calo hôm nay!"
	MsgProgressGood     = "👍 Tiến độ tốt! Hãy cố gắng thêm một chút nữa."
	MsgProgressReached  = "🎉 Tuyệt vời! Bạn đã đạt mục tiêu calo hôm nay."
	MsgProgressExceeded = "💪 Xuất sắc! Bạn đã vượt mục tiêu calo hôm nay."
)

// Sex labels for the update menu.
const (
	SexLabelMale   = "Nam"
	SexLabelFemale = "Nữ"
)

// ActivityNames maps activity classes to their display names.
var ActivityNames = map[models.ActivityClass]string{
	models.ActivitySleeping:         "Ngủ",
	models.ActivitySittingWork:      "Làm việc",
	models.ActivityLightExercise:    "Giãn cơ/Đi lại",
	models.ActivityModerateExercise: "Tập thể dục",
	models.ActivityEating:           "Ăn uống",
	models.ActivityResting:          "Nghỉ ngơi",
}

// ActivityTips maps activity classes to the tip shown in calorie reports.
var ActivityTips = map[models.ActivityClass]string{
	models.ActivitySleeping:         "Ngủ đủ giấc giúp cơ thể phục hồi và đốt calo hiệu quả hơn.",
	models.ActivitySittingWork:      "Đứng dậy đi lại mỗi giờ để tăng cường trao đổi chất.",
	models.ActivityLightExercise:    "Vận động nhẹ nhàng giúp cải thiện tuần hoàn máu.",
	models.ActivityModerateExercise: "Tập thể dục đều đặn giúp tăng cơ và đốt mỡ hiệu quả.",
	models.ActivityEating:           "Ăn chậm và nhai kỹ giúp tiêu hóa tốt hơn.",
	models.ActivityResting:          "Nghỉ ngơi hợp lý giúp cơ thể phục hồi năng lượng.",
}

// DefaultActivityTip is used for activity classes without a specific tip.
const DefaultActivityTip = "Duy trì hoạt động đều đặn để có sức khỏe tốt."
