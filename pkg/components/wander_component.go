package components

// WanderComponent 漫游组件
// 存储幽灵身体中心在屏幕区域坐标系中的位置和目标，供 WanderSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type WanderComponent struct {
	// CurrentX / CurrentY 幽灵身体中心当前位置（区域坐标）
	CurrentX float64
	CurrentY float64

	// TargetX / TargetY 当前漫游目标位置
	TargetX float64
	TargetY float64

	// Moving 是否正在向目标移动
	Moving bool

	// Direction 朝向：1 = 向右，-1 = 向左（渲染时据此水平镜像）
	Direction int

	// RepickCountdown 距离下次重选目标的倒计时（秒）
	RepickCountdown float64
}
