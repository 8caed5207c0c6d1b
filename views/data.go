package views

import (
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/views/layout"
)

// Section is one enabled module on the home page. Products is filled only
// for the products module and already limited to its showCount.
type Section struct {
	ID       content.ModuleID
	Content  content.ModuleContent
	Products []content.Product
}

type HomePage struct {
	Meta     layout.PageMeta
	Site     content.SiteConfig
	Sections []Section
	// Degraded names sections that could not be loaded.
	Degraded []string
}

type ProductPage struct {
	Meta    layout.PageMeta
	Site    content.SiteConfig
	Product content.Product
}

type MessagePage struct {
	Meta    layout.PageMeta
	Site    content.SiteConfig
	Title   string
	Message string
}

type LoginPage struct {
	Site content.SiteConfig
	From string
}

type AdminPage struct {
	Site   content.SiteConfig
	Title  string
	Active string
}

type DashboardPage struct {
	AdminPage
	TotalProducts  int64
	ActiveProducts int64
	Modules        []content.Module
	EnabledModules int
}

type ProductsAdminPage struct {
	AdminPage
	Products []content.Product
}

type ModulesAdminPage struct {
	AdminPage
	Modules []content.Module
}

type SettingsAdminPage struct {
	AdminPage
}

type ImportAdminPage struct {
	AdminPage
	Kinds []string
}

type GuideAdminPage struct {
	AdminPage
}
