package i18n

// Claves de traducción usadas por el backend.
const (
	KeyPaid       = "paid"
	KeyPending    = "pending"
	KeyOverdue    = "overdue"
	KeyInProgress = "inProgress"
	KeyCompleted  = "completed"
	KeyCancelled  = "cancelled"
	KeyDueAmount  = "dueAmount"
	KeyPromptPay  = "payWithPromptpay"
	KeyReminder   = "paymentReminder"
	KeyStatement  = "statement"
)

var translations = map[Lang]map[string]string{
	TH: {
		// Navegación
		"dashboard": "แดชบอร์ด",
		"payments":  "การชำระเงิน",
		"orders":    "คำสั่งซื้อ",
		"admin":     "ผู้ดูแลระบบ",
		"profile":   "โปรไฟล์",
		"logout":    "ออกจากระบบ",

		// Auth
		"login":    "เข้าสู่ระบบ",
		"password": "รหัสผ่าน",
		"idNumber": "เลขบัตรประชาชน",
		"email":    "อีเมล",
		"phone":    "โทรศัพท์",

		// Dashboard
		"welcome":        "ยินดีต้อนรับ",
		"paymentHistory": "ประวัติการชำระเงิน",
		KeyOverdue:       "เกินกำหนด",
		KeyPaid:          "ชำระแล้ว",
		KeyPending:       "รอชำระ",
		"amount":         "จำนวนเงิน",
		"date":           "วันที่",
		"status":         "สถานะ",
		"dueDate":        "วันครบกำหนด",
		"description":    "รายละเอียด",
		"noOverdue":      "ไม่มียอดค้างชำระ",
		KeyDueAmount:     "ยอดค้างชำระ",
		KeyPromptPay:     "ชำระด้วย PromptPay",

		// Pedidos
		"reorderIdentical": "สั่งซื้อซ้ำ",
		"orderHistory":     "ประวัติคำสั่งซื้อ",
		"customPerfume":    "น้ำหอมสั่งทำพิเศษ",
		KeyInProgress:      "กำลังดำเนินการ",
		KeyCompleted:       "เสร็จสิ้น",
		KeyCancelled:       "ยกเลิกแล้ว",

		// Admin
		"clientManagement": "จัดการลูกค้า",
		"addClient":        "เพิ่มลูกค้า",
		"orderManagement":  "จัดการคำสั่งซื้อ",
		"paymentTracking":  "ติดตามการชำระเงิน",
		"reports":          "รายงาน",
		KeyReminder:        "แจ้งเตือนการชำระเงิน",
		KeyStatement:       "ใบแจ้งยอด",

		// Común
		"save":    "บันทึก",
		"cancel":  "ยกเลิก",
		"loading": "กำลังโหลด...",
		"error":   "เกิดข้อผิดพลาด",
		"success": "สำเร็จ",
	},
	EN: {
		"dashboard": "Dashboard",
		"payments":  "Payments",
		"orders":    "Orders",
		"admin":     "Admin",
		"profile":   "Profile",
		"logout":    "Logout",

		"login":    "Login",
		"password": "Password",
		"idNumber": "ID Number",
		"email":    "Email",
		"phone":    "Phone",

		"welcome":        "Welcome",
		"paymentHistory": "Payment History",
		KeyOverdue:       "Overdue",
		KeyPaid:          "Paid",
		KeyPending:       "Pending",
		"amount":         "Amount",
		"date":           "Date",
		"status":         "Status",
		"dueDate":        "Due Date",
		"description":    "Description",
		"noOverdue":      "No overdue balance",
		KeyDueAmount:     "Amount Due",
		KeyPromptPay:     "Pay with PromptPay",

		"reorderIdentical": "Reorder Identical",
		"orderHistory":     "Order History",
		"customPerfume":    "Custom Perfume",
		KeyInProgress:      "In Progress",
		KeyCompleted:       "Completed",
		KeyCancelled:       "Cancelled",

		"clientManagement": "Client Management",
		"addClient":        "Add Client",
		"orderManagement":  "Order Management",
		"paymentTracking":  "Payment Tracking",
		"reports":          "Reports",
		KeyReminder:        "Payment Reminder",
		KeyStatement:       "Statement",

		"save":    "Save",
		"cancel":  "Cancel",
		"loading": "Loading...",
		"error":   "Error",
		"success": "Success",
	},
}

// statusKeys mapea estados de pago y de pedido a su clave de traducción.
var statusKeys = map[string]string{
	"paid":        KeyPaid,
	"pending":     KeyPending,
	"overdue":     KeyOverdue,
	"in-progress": KeyInProgress,
	"completed":   KeyCompleted,
	"cancelled":   KeyCancelled,
}

// StatusLabel etiqueta traducida de un estado; si no se conoce, devuelve el estado tal cual.
func StatusLabel(lang Lang, status string) string {
	key, ok := statusKeys[status]
	if !ok {
		return status
	}
	return T(lang, key)
}
