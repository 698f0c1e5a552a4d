package content

const (
	OwnerName = "Hinal Tilavat"
	OwnerRole = "React Native Developer"

	aboutMarkdown = `Hello! I'm **Hinal Tilavat**, a dedicated and creative React Native Developer with a passion for building
beautiful and functional mobile applications. With 4 years of experience in mobile app development, I thrive on
solving complex problems and bringing innovative ideas to life on iOS and Android platforms.

My expertise spans across **React Native, JavaScript, TypeScript, Redux/Zustand, Firebase, REST APIs, and third-party
library integration**. I love learning new technologies and constantly pushing the boundaries of what's possible in
the mobile ecosystem.

When I’m not immersed in code, you’ll find me exploring new tech, contributing to open source, or enjoying a good
book. I believe in continuous growth and the power of collaboration. Let’s create something amazing together!
`

	blogHeadline = "Coming Soon!"
	blogBody     = "I'm working on some exciting content. Stay tuned!"
)

var projects = []Project{
	{
		Title:       "Referaly",
		Description: "Develop, Centralize, and Manage your business referral networks.",
		Accent:      "teal",
		Links: []StoreLink{
			{Android, "https://play.google.com/store/apps/details?id=com.referaly&pli=1"},
			{IOS, "https://apps.apple.com/in/app/referaly/id6502189377"},
		},
	},
	{
		Title: "Chipper",
		Description: "Chipper helps you save big by connecting you with the best coupons, tailored to your interests " +
			"and location. Discover, save, and enjoy unlimited discounts — anytime, anywhere!",
		Accent: "purple",
		Links: []StoreLink{
			{Android, "https://play.google.com/store/apps/details?id=com.chipper&hl=en_IN"},
			{IOS, "https://apps.apple.com/us/app/chipper/id1538769004"},
		},
	},
	{
		Title: "FreJun",
		Description: "FreJun lets you make and track business calls in India with ease — identify incoming calls, " +
			"make outgoing calls, and access all call records seamlessly.",
		Accent: "indigo",
		Links: []StoreLink{
			{Android, "https://play.google.com/store/apps/details?id=com.frejun.FreJunApp&hl=en_IN&pli=1"},
			{IOS, "https://apps.apple.com/us/app/frejun-dialer/id1621698092"},
		},
	},
	{
		Title: "Timealign",
		Description: "Timealign is a productivity app designed to help you manage your time effectively. With features " +
			"like task scheduling, reminders, and analytics, you can optimize your workflow and stay focused on what matters most.",
		Accent: "pink",
		Links: []StoreLink{
			{IOS, "https://apps.apple.com/us/app/timealign-track-manage-time/id6448807385"},
		},
	},
}

var footerLinks = []Link{
	{"LinkedIn", "https://www.linkedin.com/in/hinal-tilavat"},
	{"GitHub", "https://github.com/hinaltilavat"},
}
