package service

// CanonicalCategories — фиксированный словарь признанных тегов каталога
// (категории, типы страниц, стили). Используется для агрегации счётчиков и
// видимости фильтров; добавление тега — правка этого списка, не данные
// рантайма. Отображаемый регистр — как здесь; сравнение всегда через
// normalize.CanonicalTag.
var CanonicalCategories = []string{
	"SaaS", "E-commerce", "Finance", "Healthcare", "Education",
	"Technology", "Marketing", "Design", "Startup", "Agency",
	"Nonprofit", "Real Estate", "Food & Beverage", "Fitness",
	"Travel", "Entertainment", "Media", "Consulting", "Legal",
	"Manufacturing", "Retail", "Fashion", "Beauty",
	"Home Services", "Automotive", "AI", "UI/UX",

	"Landing Page", "Dashboard", "Mobile App", "Web App", "Blog",
	"Portfolio", "Personal", "Docs", "Pricing",
	"Auth", "Onboarding", "Careers", "Contact", "About",
	"Case Studies", "Help Center", "Knowledge Base", "Status Page",
	"Blog Platform", "Checkout", "Booking", "Directory",
	"Newsletter", "Community",

	"Minimal", "Bold", "Dark Mode", "Light Mode", "Gradient",
	"3D", "Motion", "Illustration", "Photography", "Typography",
	"Neumorphism", "Glassmorphism", "Brutalist", "Vintage", "Modern",
	"Retro", "Futuristic", "Playful", "Corporate", "Elegant",
	"Hand-drawn", "Geometric", "Abstract", "Creative",
}
