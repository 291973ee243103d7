package site

// guideDictionary shortens the sidebar definitions below.
func guideDictionary() LocaleDictionary {
	return LocaleDictionary{
		"htmli":  "/base/html/",
		"cssi":   "/base/css/",
		"jsi":    "/base/js/",
		"es6i":   "/base/es6/",
		"tsi":    "/base/typescript/",
		"brw":    "/browser/",
		"net":    "/network/",
		"vuei":   "/framework/vue/",
		"reacti": "/framework/react/",
		"engi":   "/engineering/",
		"perfi":  "/engineering/performance/",
		"hw":     "/handwrite/",
		"algo":   "/algorithm/",
	}
}

// Guide returns the configuration of the frontend-interview study guide.
// Each call builds a fresh value.
func Guide() *Config {
	d := guideDictionary()

	return &Config{
		Title:       "前端面试指南",
		Description: "系统梳理前端面试高频知识点",
		Base:        "/",
		Lang:        "zh-CN",
		LastUpdated: true,

		Locales: map[string]Locale{
			"root": {Label: "简体中文", Lang: "zh-CN"},
		},
		Dictionary: d,

		Nav: []NavItem{
			{Text: "首页", Link: "/"},
			{Text: "基础", Link: "/base/html/semantic", ActiveMatch: "/base/"},
			{Text: "浏览器", Link: "/browser/rendering-process", ActiveMatch: "/browser/"},
			{Text: "网络", Link: "/network/http-versions", ActiveMatch: "/network/"},
			{Text: "框架", Link: "/framework/vue/reactivity", ActiveMatch: "/framework/"},
			{Text: "工程化", Link: "/engineering/webpack-basics", ActiveMatch: "/engineering/"},
			{Text: "手写代码", Link: "/handwrite/debounce-throttle", ActiveMatch: "/handwrite/"},
			{Text: "算法", Link: "/algorithm/sorting", ActiveMatch: "/algorithm/"},
		},

		Sidebar: Sidebar{
			{
				Prefix:  "/base/",
				Heading: "前端基础",
				Groups: []SidebarGroup{
					d.Group("HTML", "htmli",
						"语义化标签", "semantic",
						"HTML5 新特性", "html5-features",
						"行内元素与块级元素", "inline-and-block",
						"script 的 defer 与 async", "defer-async",
					),
					d.Group("CSS", "cssi",
						"盒模型", "box-model",
						"BFC 块级格式化上下文", "bfc",
						"选择器优先级", "specificity",
						"Flex 布局", "flex",
						"水平垂直居中", "centering",
						"响应式与移动端适配", "responsive",
					),
					d.Group("JavaScript", "jsi",
						"数据类型与类型判断", "types",
						"原型与原型链", "prototype",
						"闭包", "closure",
						"this 指向", "this",
						"事件循环", "event-loop",
						"深拷贝与浅拷贝", "copy",
						"垃圾回收", "garbage-collection",
					),
					d.Group("ES6+", "es6i",
						"变量声明与作用域", "variables-and-scope",
						"箭头函数", "arrow-functions",
						"解构赋值", "destructuring",
						"Promise", "promise",
						"async/await", "async-await",
						"Proxy 与 Reflect", "proxy-reflect",
						"模块化", "modules",
					),
					d.Group("TypeScript", "tsi",
						"基础类型", "basic-types",
						"泛型", "generics",
						"类型体操", "type-challenges",
					),
				},
			},
			{
				Prefix: "/browser/",
				Groups: []SidebarGroup{
					d.Group("浏览器原理", "brw",
						"渲染流程", "rendering-process",
						"重排与重绘", "reflow-repaint",
						"本地存储方案", "storage",
						"跨域", "cross-origin",
						"XSS 与 CSRF", "security",
						"缓存机制", "caching",
					),
				},
			},
			{
				Prefix: "/network/",
				Groups: []SidebarGroup{
					d.Group("计算机网络", "net",
						"HTTP 版本演进", "http-versions",
						"HTTPS 与 TLS", "https",
						"TCP 三次握手与四次挥手", "tcp",
						"DNS 解析", "dns",
						"HTTP 状态码", "status-codes",
						"WebSocket", "websocket",
					),
				},
			},
			{
				Prefix:  "/framework/",
				Heading: "框架",
				Groups: []SidebarGroup{
					d.Group("Vue", "vuei",
						"响应式原理", "reactivity",
						"虚拟 DOM 与 diff", "virtual-dom",
						"生命周期", "lifecycle",
						"组件通信", "component-communication",
						"Vue Router", "router",
						"Pinia 与 Vuex", "state-management",
					),
					d.Group("React", "reacti",
						"JSX 与虚拟 DOM", "jsx",
						"Hooks 原理", "hooks",
						"Fiber 架构", "fiber",
						"状态管理", "state-management",
						"性能优化", "performance",
					),
				},
			},
			{
				Prefix: "/engineering/",
				Groups: []SidebarGroup{
					d.Group("构建工具", "engi",
						"Webpack 基础", "webpack-basics",
						"Loader 与 Plugin", "loader-plugin",
						"Vite 原理", "vite",
						"Babel", "babel",
						"模块规范", "module-systems",
					),
					collapsed(d.Group("性能优化", "perfi",
						"首屏优化", "first-screen",
						"图片优化", "images",
						"性能指标", "metrics",
					)),
				},
			},
			{
				Prefix: "/handwrite/",
				Groups: []SidebarGroup{
					d.Group("手写代码", "hw",
						"防抖与节流", "debounce-throttle",
						"call、apply 与 bind", "call-apply-bind",
						"new 操作符", "new",
						"Promise", "promise",
						"深拷贝", "deep-clone",
						"发布订阅", "event-emitter",
					),
				},
			},
			{
				Prefix: "/algorithm/",
				Groups: []SidebarGroup{
					d.Group("算法", "algo",
						"排序", "sorting",
						"二分查找", "binary-search",
						"链表", "linked-list",
						"二叉树", "binary-tree",
						"动态规划", "dynamic-programming",
					),
				},
			},
		},

		Search: SearchTranslations{
			"root": {
				"button": map[string]any{
					"buttonText":      "搜索文档",
					"buttonAriaLabel": "搜索文档",
				},
				"modal": map[string]any{
					"noResultsText":    "无法找到相关结果",
					"resetButtonTitle": "清除查询条件",
					"footer": map[string]any{
						"selectText":   "选择",
						"navigateText": "切换",
						"closeText":    "关闭",
					},
				},
			},
		},

		Footer: Footer{
			Message:   "基于 MIT 许可发布",
			Copyright: "Copyright © 2023-present",
		},
		Outline:             Outline{Levels: [2]int{2, 3}, Label: "页面导航"},
		DocFooter:           DocFooter{Prev: "上一页", Next: "下一页"},
		LastUpdatedText:     "最后更新于",
		ReturnToTopLabel:    "回到顶部",
		SidebarMenuLabel:    "菜单",
		DarkModeSwitchLabel: "主题",
	}
}

func collapsed(g SidebarGroup) SidebarGroup {
	g.Collapsed = true
	return g
}
