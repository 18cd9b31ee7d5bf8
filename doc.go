/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package chartdata 把数据源返回的原始文档转换为图表渲染器可以直接使用的配置。

一次渲染接收图表配置、若干数据集和可选的仪表盘过滤器，输出统一标签轴上的
各数据集数值，或者表格图表的列定义和行数据。

# 核心特性

• 类型推断 - 识别字符串、数字、布尔、日期、数组和对象，支持 BSON 驱动类型
• 条件过滤 - 按推断出的字段类型比较，同时返回每个条件字段的可选值
• 坐标轴解析 - root[] 路径语法，支持嵌套集合和按时间间隔分桶
• 聚合操作 - none, count, count_unique, sum, avg, min, max
• 零值填充 - 日期轴按时间间隔补齐缺失的桶，可选累计模式
• 公式 - 形如 "$ {val / 100}" 的数值公式，使用 expr 求值并缓存编译结果
• 表格 - 嵌套对象展开为两级列，支持列排除、列排序和日期数字格式化

# 入门示例

	engine := chartdata.New(chartdata.WithLocation(time.UTC))

	result, err := engine.Render(chartdata.Request{
		Chart: types.Chart{
			Type:         types.ChartLine,
			TimeInterval: types.IntervalDay,
		},
		Datasets: []types.Dataset{{
			Data: []interface{}{
				map[string]interface{}{"createdAt": "2024-01-01T10:00:00Z"},
				map[string]interface{}{"createdAt": "2024-01-01T12:00:00Z"},
				map[string]interface{}{"createdAt": "2024-01-03T09:00:00Z"},
			},
			Options: types.DatasetOptions{
				XAxis:          "root[].createdAt",
				YAxis:          "root[].createdAt",
				YAxisOperation: types.OperationCount,
			},
		}},
	})
	if err != nil {
		panic(err)
	}
	// result.Chart.Data.Labels: ["2024 Jan 1", "2024 Jan 3"]
	// result.Chart.Data.Datasets[0].Data: [2, 1]

# 路径语法

x 轴、y 轴和条件字段使用同一套路径语法：

	root[].createdAt          根数组中每条记录的字段
	root.data.rows[].x        对象中的数组
	root[].items[].price      每条记录内的嵌套集合
	createdAt                 相对路径，等同于 root[].createdAt

# 日志

默认使用全局日志记录器，可以通过 WithLogger、WithLogLevel、WithLogOutput
和 WithDiscardLog 调整。每次渲染都会生成一个渲染 ID，slog 后端的日志记录器
会把它作为 render_id 属性输出。
*/
package chartdata
